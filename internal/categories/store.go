// Package categories owns the category forest: a flat list of categories
// whose hierarchy is implicit via parent ids.
//
// All mutations validate before touching the in-memory list, so a rejected
// operation never leaves the forest partially updated.
package categories

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/wordstash/wordstash/internal/entities"
	"github.com/wordstash/wordstash/internal/utils"
)

var (
	ErrEmptyName     = errors.New("category name is required")
	ErrNotFound      = errors.New("category not found")
	ErrDuplicatePath = errors.New("a category with this name already exists at this level")
	ErrCycle         = errors.New("category cannot be its own ancestor")
)

// EntryMigrator rewrites the category name on vocabulary entries when a
// category is renamed or deleted. Implemented by the vocabulary engine.
type EntryMigrator interface {
	MigrateCategory(oldName, newName string) int
}

// CategoryPatch is a partial update. Nil fields are left unchanged; a
// non-nil empty ParentID moves the category to the root level.
type CategoryPatch struct {
	Name        *string
	ParentID    *string
	Color       *string
	Description *string
}

// TreeNode is one node of the rendered category forest.
type TreeNode struct {
	entities.Category
	Level           int        `json:"level"`
	VocabularyCount int        `json:"vocabularyCount"`
	Children        []TreeNode `json:"children,omitempty"`
}

// DropdownItem is a flattened tree row for selection lists.
type DropdownItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Store holds the category forest.
type Store struct {
	categories []entities.Category
	fallback   string
	collator   *collate.Collator
	migrator   EntryMigrator
	created    int // drives palette rotation
	now        func() time.Time
}

// NewStore creates an empty store. fallbackCategory is the name entries are
// migrated to when their category is deleted; locale controls sibling
// ordering in trees and dropdowns.
func NewStore(fallbackCategory string, locale language.Tag) *Store {
	return &Store{
		categories: []entities.Category{},
		fallback:   fallbackCategory,
		collator:   collate.New(locale),
		now:        time.Now,
	}
}

// SetMigrator registers the vocabulary-side hook for cascade deletes and
// rename propagation.
func (s *Store) SetMigrator(m EntryMigrator) {
	s.migrator = m
}

// Load replaces the store contents, typically from a persisted snapshot.
func (s *Store) Load(categories []entities.Category) {
	s.categories = make([]entities.Category, len(categories))
	copy(s.categories, categories)
	s.created = len(categories)
}

// All returns a copy of the flat category list.
func (s *Store) All() []entities.Category {
	out := make([]entities.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Get returns a copy of the category with the given id, or nil.
func (s *Store) Get(id string) *entities.Category {
	if i := s.indexOf(id); i >= 0 {
		c := s.categories[i]
		return &c
	}
	return nil
}

// Add creates a category. parentID may be empty for a root category; color
// defaults to the next palette entry when empty.
func (s *Store) Add(name, parentID, color, description string) (*entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if parentID != "" && s.indexOf(parentID) < 0 {
		return nil, ErrNotFound
	}
	if s.siblingExists(parentID, name, "") {
		return nil, ErrDuplicatePath
	}
	if color == "" {
		color = utils.PaletteColor(s.created)
	}

	now := s.now()
	category := entities.Category{
		ID:          uuid.NewString(),
		Name:        name,
		ParentID:    parentID,
		Color:       color,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.categories = append(s.categories, category)
	s.created++
	return &category, nil
}

// Update applies a partial patch. Renames propagate to vocabulary entries
// through the registered migrator; parent changes are rejected when they
// would create a cycle.
func (s *Store) Update(id string, patch CategoryPatch) (*entities.Category, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	target := s.categories[i]
	newName := target.Name
	newParent := target.ParentID

	if patch.Name != nil {
		newName = strings.TrimSpace(*patch.Name)
		if newName == "" {
			return nil, ErrEmptyName
		}
	}
	if patch.ParentID != nil {
		newParent = *patch.ParentID
		if newParent != "" {
			if s.indexOf(newParent) < 0 {
				return nil, ErrNotFound
			}
			if newParent == id || s.isDescendant(newParent, id) {
				return nil, ErrCycle
			}
		}
	}
	if (newName != target.Name || newParent != target.ParentID) &&
		s.siblingExists(newParent, newName, id) {
		return nil, ErrDuplicatePath
	}

	oldName := target.Name
	target.Name = newName
	target.ParentID = newParent
	if patch.Color != nil {
		target.Color = *patch.Color
	}
	if patch.Description != nil {
		target.Description = strings.TrimSpace(*patch.Description)
	}
	target.UpdatedAt = s.now()
	s.categories[i] = target

	if oldName != newName && s.migrator != nil {
		s.migrator.MigrateCategory(oldName, newName)
	}

	result := target
	return &result, nil
}

// Delete removes a category and all of its descendants. Vocabulary entries
// referencing any deleted category are migrated to the fallback category.
func (s *Store) Delete(id string) error {
	if s.indexOf(id) < 0 {
		return ErrNotFound
	}

	doomed := map[string]bool{id: true}
	names := []string{s.categories[s.indexOf(id)].Name}
	// Breadth-first sweep over the flat list until no new children turn up.
	for {
		grew := false
		for _, c := range s.categories {
			if c.ParentID != "" && doomed[c.ParentID] && !doomed[c.ID] {
				doomed[c.ID] = true
				names = append(names, c.Name)
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	kept := s.categories[:0]
	for _, c := range s.categories {
		if !doomed[c.ID] {
			kept = append(kept, c)
		}
	}
	s.categories = kept

	if s.migrator != nil {
		for _, name := range names {
			if name != s.fallback {
				s.migrator.MigrateCategory(name, s.fallback)
			}
		}
	}
	return nil
}

// PathOf returns the dotted full path of a category ("parent.child"), or an
// empty string when the id is unknown.
func (s *Store) PathOf(id string) string {
	i := s.indexOf(id)
	if i < 0 {
		return ""
	}
	parts := []string{s.categories[i].Name}
	parent := s.categories[i].ParentID
	for parent != "" {
		j := s.indexOf(parent)
		if j < 0 {
			break
		}
		parts = append([]string{s.categories[j].Name}, parts...)
		parent = s.categories[j].ParentID
	}
	return strings.Join(parts, ".")
}

// Tree builds the category forest. countFn supplies the number of
// vocabulary entries per category name; it may be nil. Siblings are ordered
// by name using the store's collator. The tree is recomputed from the flat
// list on every call.
func (s *Store) Tree(countFn func(categoryName string) int) []TreeNode {
	byParent := s.childrenByParent()
	return s.buildNodes(byParent, "", 0, countFn)
}

// DropdownList returns a depth-first pre-order flattening of the forest,
// excluding the single category with the given name. Descendants of the
// excluded category are kept: they remain valid targets.
func (s *Store) DropdownList(excludeName string) []DropdownItem {
	byParent := s.childrenByParent()
	var items []DropdownItem
	var walk func(parentID string, level int)
	walk = func(parentID string, level int) {
		for _, c := range byParent[parentID] {
			if c.Name != excludeName {
				items = append(items, DropdownItem{ID: c.ID, Name: c.Name, Level: level})
			}
			walk(c.ID, level+1)
		}
	}
	walk("", 0)
	return items
}

func (s *Store) buildNodes(byParent map[string][]entities.Category, parentID string, level int, countFn func(string) int) []TreeNode {
	children := byParent[parentID]
	nodes := make([]TreeNode, 0, len(children))
	for _, c := range children {
		node := TreeNode{Category: c, Level: level}
		if countFn != nil {
			node.VocabularyCount = countFn(c.Name)
		}
		node.Children = s.buildNodes(byParent, c.ID, level+1, countFn)
		nodes = append(nodes, node)
	}
	return nodes
}

func (s *Store) childrenByParent() map[string][]entities.Category {
	byParent := make(map[string][]entities.Category)
	for _, c := range s.categories {
		byParent[c.ParentID] = append(byParent[c.ParentID], c)
	}
	for _, siblings := range byParent {
		sort.SliceStable(siblings, func(i, j int) bool {
			return s.collator.CompareString(siblings[i].Name, siblings[j].Name) < 0
		})
	}
	return byParent
}

func (s *Store) indexOf(id string) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// siblingExists reports whether parentID already has a child whose name
// matches case-insensitively, ignoring excludeID.
func (s *Store) siblingExists(parentID, name, excludeID string) bool {
	for _, c := range s.categories {
		if c.ID != excludeID && c.ParentID == parentID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// isDescendant reports whether candidate sits somewhere below ancestorID.
func (s *Store) isDescendant(candidate, ancestorID string) bool {
	seen := map[string]bool{}
	current := candidate
	for current != "" && !seen[current] {
		seen[current] = true
		i := s.indexOf(current)
		if i < 0 {
			return false
		}
		if s.categories[i].ParentID == ancestorID {
			return true
		}
		current = s.categories[i].ParentID
	}
	return false
}
