package db

import (
	"fmt"
	"strings"

	"leaflog/internal/models"
)

// AddBookRequest holds the data needed to add a book to the collection
type AddBookRequest struct {
	Title      string
	Author     string
	TotalPages int
}

// AddBook adds a book to the reading collection.
func (s *Store) AddBook(req AddBookRequest) (*models.Book, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("book title is required")
	}

	book := models.Book{
		Title:      title,
		Author:     strings.TrimSpace(req.Author),
		TotalPages: req.TotalPages,
	}
	book.ClampPages()

	if err := s.db.Create(&book).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	return &book, nil
}

// GetBookByID retrieves a book by ID.
func (s *Store) GetBookByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := s.db.First(&book, id).Error; err != nil {
		return nil, fmt.Errorf("book #%d not found", id)
	}
	return &book, nil
}

// GetBooks retrieves the whole collection, oldest first.
func (s *Store) GetBooks() ([]models.Book, error) {
	var books []models.Book
	if err := s.db.Order("id ASC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// SearchBooks finds books whose title or author contains the query.
func (s *Store) SearchBooks(query string) ([]models.Book, error) {
	var books []models.Book
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := s.db.
		Where("title LIKE ? OR author LIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// EditBookRequest carries optional field updates; nil means keep.
type EditBookRequest struct {
	Title      *string
	Author     *string
	TotalPages *int
}

// EditBook updates book metadata, re-clamping the page invariants.
func (s *Store) EditBook(id uint, req EditBookRequest) (*models.Book, error) {
	book, err := s.GetBookByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("book title cannot be empty")
		}
		book.Title = title
	}
	if req.Author != nil {
		book.Author = strings.TrimSpace(*req.Author)
	}
	if req.TotalPages != nil {
		book.TotalPages = *req.TotalPages
	}
	book.ClampPages()

	if err := s.db.Save(book).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	return book, nil
}

// AddProgress moves the bookmark by deltaPages (may be negative) and
// clamps to [0, totalPages].
func (s *Store) AddProgress(id uint, deltaPages int) (*models.Book, error) {
	book, err := s.GetBookByID(id)
	if err != nil {
		return nil, err
	}

	book.CurrentPage += deltaPages
	book.ClampPages()

	if err := s.db.Save(book).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	return book, nil
}

// SetPage places the bookmark on an absolute page, clamped.
func (s *Store) SetPage(id uint, page int) (*models.Book, error) {
	book, err := s.GetBookByID(id)
	if err != nil {
		return nil, err
	}

	book.CurrentPage = page
	book.ClampPages()

	if err := s.db.Save(book).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	return book, nil
}

// FinishBook marks a book as read cover to cover.
func (s *Store) FinishBook(id uint) (*models.Book, error) {
	book, err := s.GetBookByID(id)
	if err != nil {
		return nil, err
	}
	if book.TotalPages <= 0 {
		return nil, fmt.Errorf("book #%d has no page count; set one with 'leaflog edit'", id)
	}
	if book.Finished() {
		return nil, fmt.Errorf("book #%d is already finished", id)
	}

	book.CurrentPage = book.TotalPages

	if err := s.db.Save(book).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	return book, nil
}

// RemoveBook deletes a book from the collection. Its sessions are kept;
// their book reference dangles and resolves to "Unassigned" at query time.
func (s *Store) RemoveBook(id uint) (*models.Book, error) {
	book, err := s.GetBookByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(book).Error; err != nil {
		return nil, err
	}
	s.notifyMutation()

	return book, nil
}
