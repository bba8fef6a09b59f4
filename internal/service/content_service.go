package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/snapshot"
	"context"
	"time"
)

const pagesCollection = "pages"

// DefaultPages 首次启动时写入的静态页面
func DefaultPages(now time.Time) []model.ContentPage {
	ts := now.UTC().Format(time.RFC3339)
	return []model.ContentPage{
		{Key: "help", Title: "Help & Support", Content: "<h1>Help Center</h1><p>How can we assist you today?</p>", LastUpdated: ts},
		{Key: "about", Title: "About Us", Content: "<h1>About Kajoogram</h1><p>We are the leading premium social commerce platform.</p>", LastUpdated: ts},
		{Key: "contact", Title: "Contact Us", Content: "<h1>Get in Touch</h1><p>Email us at support@kajoogram.com</p>", LastUpdated: ts},
		{Key: "follow", Title: "Follow Us", Content: "<h1>Join the Community</h1><p>Follow us on Instagram and Twitter.</p>", LastUpdated: ts},
		{Key: "privacy", Title: "Privacy Policy", Content: "<h1>Privacy Policy</h1><p>Your data is safe with us.</p>", LastUpdated: ts},
	}
}

type ContentService interface {
	ListPages(ctx context.Context) []model.ContentPage
	GetPage(ctx context.Context, key string) (*model.ContentPage, error)
	UpdatePage(ctx context.Context, key string, req *dto.PageUpdateDTO) (*model.ContentPage, error)
}

type contentServiceImpl struct {
	pages *snapshot.Collection[model.ContentPage]
	now   func() time.Time
}

func NewContentService(ctx context.Context, store *snapshot.Store) (ContentService, error) {
	pages, err := snapshot.NewCollection(ctx, store, pagesCollection, DefaultPages(time.Now()))
	if err != nil {
		return nil, err
	}
	return &contentServiceImpl{pages: pages, now: time.Now}, nil
}

func (s *contentServiceImpl) ListPages(ctx context.Context) []model.ContentPage {
	return s.pages.All()
}

func (s *contentServiceImpl) GetPage(ctx context.Context, key string) (*model.ContentPage, error) {
	p, ok := s.pages.Find(func(p model.ContentPage) bool { return p.Key == key })
	if !ok {
		return nil, ErrPageNotFound
	}
	return &p, nil
}

// UpdatePage 只能修改已有页面，同时刷新 last_updated
func (s *contentServiceImpl) UpdatePage(ctx context.Context, key string, req *dto.PageUpdateDTO) (*model.ContentPage, error) {
	var updated model.ContentPage
	err := s.pages.Mutate(ctx, func(items []model.ContentPage) ([]model.ContentPage, error) {
		for i := range items {
			if items[i].Key == key {
				items[i].Title = req.Title
				items[i].Content = req.Content
				items[i].LastUpdated = s.now().UTC().Format(time.RFC3339)
				updated = items[i]
				return items, nil
			}
		}
		return nil, ErrPageNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
