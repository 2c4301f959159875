// Package board is a small Kanban board built on the tuist widgets: a YAML
// file holds the columns and cards, and Screen renders and edits them.
package board

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when a card would be saved without a title.
var ErrEmptyTitle = errors.New("card title is empty")

// Board is the whole document stored in the board file.
type Board struct {
	Title   string   `yaml:"title"`
	Columns []Column `yaml:"columns"`
}

// Column is one lane of cards.
type Column struct {
	Name  string `yaml:"name"`
	Cards []Card `yaml:"cards,omitempty"`
}

// Card is a single work item.
type Card struct {
	ID          uuid.UUID `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
}

// Default returns the board used when no file exists yet.
func Default() *Board {
	return &Board{
		Title: "Board",
		Columns: []Column{
			{Name: "TODO"},
			{Name: "IN PROGRESS"},
			{Name: "DONE"},
		},
	}
}

// Normalize fills in what a hand-edited file may leave out: a title, at
// least one column, and IDs for cards that have none.
func (b *Board) Normalize() {
	if strings.TrimSpace(b.Title) == "" {
		b.Title = "Board"
	}
	if len(b.Columns) == 0 {
		b.Columns = Default().Columns
	}
	for i := range b.Columns {
		for j := range b.Columns[i].Cards {
			if b.Columns[i].Cards[j].ID == uuid.Nil {
				b.Columns[i].Cards[j].ID = uuid.New()
			}
		}
	}
}

// Find returns the column and row of the card with the given ID.
func (b *Board) Find(id uuid.UUID) (col, row int, ok bool) {
	for c := range b.Columns {
		for r, card := range b.Columns[c].Cards {
			if card.ID == id {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}

// Card returns the card at col, row.
func (b *Board) Card(col, row int) (Card, bool) {
	if col < 0 || col >= len(b.Columns) {
		return Card{}, false
	}
	cards := b.Columns[col].Cards
	if row < 0 || row >= len(cards) {
		return Card{}, false
	}
	return cards[row], true
}

// AddCard appends a new card to column col and returns it.
func (b *Board) AddCard(col int, title, description string) (Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Card{}, ErrEmptyTitle
	}
	col = clampIndex(col, len(b.Columns))
	card := Card{ID: uuid.New(), Title: title, Description: strings.TrimSpace(description)}
	b.Columns[col].Cards = append(b.Columns[col].Cards, card)
	return card, nil
}

// UpdateCard replaces the title and description of the card with id.
func (b *Board) UpdateCard(id uuid.UUID, title, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	col, row, ok := b.Find(id)
	if !ok {
		return nil
	}
	c := &b.Columns[col].Cards[row]
	c.Title = title
	c.Description = strings.TrimSpace(description)
	return nil
}

// MoveCard moves the card with id to the end of column to. It reports the
// card's new row, or false if the card or column does not exist.
func (b *Board) MoveCard(id uuid.UUID, to int) (int, bool) {
	if to < 0 || to >= len(b.Columns) {
		return 0, false
	}
	col, row, ok := b.Find(id)
	if !ok {
		return 0, false
	}
	if col == to {
		return row, true
	}
	card := b.Columns[col].Cards[row]
	b.Columns[col].Cards = slices.Delete(b.Columns[col].Cards, row, row+1)
	b.Columns[to].Cards = append(b.Columns[to].Cards, card)
	return len(b.Columns[to].Cards) - 1, true
}

// RemoveCard deletes the card with id.
func (b *Board) RemoveCard(id uuid.UUID) bool {
	col, row, ok := b.Find(id)
	if !ok {
		return false
	}
	b.Columns[col].Cards = slices.Delete(b.Columns[col].Cards, row, row+1)
	return true
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(i, n-1))
}
