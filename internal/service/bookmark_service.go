package service

import (
	"time"

	"github.com/google/uuid"

	"wonbyte/internal/models"
	"wonbyte/internal/storage"
)

const bookmarksKey = "bookmarks"

// BookmarkService maintains a learner's saved reading passages.
type BookmarkService struct {
	store *storage.UserStore
	now   func() time.Time
}

func NewBookmarkService(store *storage.UserStore) *BookmarkService {
	return &BookmarkService{store: store, now: time.Now}
}

func (s *BookmarkService) List() []models.Bookmark {
	list := []models.Bookmark{}
	s.store.Load(bookmarksKey, &list)
	return list
}

func (s *BookmarkService) Add(bookmark models.Bookmark) []models.Bookmark {
	var list []models.Bookmark
	s.store.Update(bookmarksKey, func() {
		list = s.List()
		bookmark.ID = uuid.NewString()
		bookmark.AddedDate = s.now()
		bookmark.LastUsedDate = nil
		bookmark.UseCount = 0
		if bookmark.Tags == nil {
			bookmark.Tags = []string{}
		}
		list = append(list, bookmark)
		s.store.Save(bookmarksKey, list)
	})
	return list
}

func (s *BookmarkService) Remove(id string) []models.Bookmark {
	var list []models.Bookmark
	s.store.Update(bookmarksKey, func() {
		list = s.List()
		for i := range list {
			if list[i].ID == id {
				list = append(list[:i], list[i+1:]...)
				s.store.Save(bookmarksKey, list)
				return
			}
		}
	})
	return list
}

// Use counts one reading of a bookmarked passage. An unknown id is a no-op.
func (s *BookmarkService) Use(id string) []models.Bookmark {
	var list []models.Bookmark
	s.store.Update(bookmarksKey, func() {
		list = s.List()
		for i := range list {
			if list[i].ID == id {
				list[i].UseCount++
				used := s.now()
				list[i].LastUsedDate = &used
				s.store.Save(bookmarksKey, list)
				return
			}
		}
	})
	return list
}
