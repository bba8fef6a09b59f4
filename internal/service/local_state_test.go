package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/snapshot"
	"Kajoogram/internal/repository/mocks"
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotStore() *snapshot.Store {
	return snapshot.NewStore(newMemKV(), "test")
}

func TestContentService_DefaultsAndUpdate(t *testing.T) {
	ctx := context.Background()
	store := newSnapshotStore()
	svc, err := NewContentService(ctx, store)
	require.NoError(t, err)

	pages := svc.ListPages(ctx)
	require.Len(t, pages, 5)
	assert.Equal(t, "help", pages[0].Key)

	updated, err := svc.UpdatePage(ctx, "about", &dto.PageUpdateDTO{Title: "About", Content: "<p>new</p>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>new</p>", updated.Content)

	_, err = svc.UpdatePage(ctx, "terms", &dto.PageUpdateDTO{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrPageNotFound)

	// 重新加载得到持久化后的内容
	reloaded, err := NewContentService(ctx, store)
	require.NoError(t, err)
	page, err := reloaded.GetPage(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "About", page.Title)
}

func TestReportService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mocks.NewMockUserRepo(ctrl)
	users.EXPECT().GetUserById(gomock.Any(), uint64(4)).Return(&model.User{ID: 4, Username: "ann"}, nil).Times(2)

	svc, err := NewReportService(ctx, newSnapshotStore(), users, &nopMedia{})
	require.NoError(t, err)

	first, err := svc.CreateReport(ctx, 4, &dto.ReportCreateDTO{Subject: "Bug", Description: "broken"})
	require.NoError(t, err)
	second, err := svc.CreateReport(ctx, 4, &dto.ReportCreateDTO{Subject: "Spam", Description: "ads"})
	require.NoError(t, err)

	all := svc.ListReports(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, model.ReportPending, all[1].Status)

	updated, err := svc.UpdateStatus(ctx, first.ID, model.ReportResolved)
	require.NoError(t, err)
	assert.Equal(t, model.ReportResolved, updated.Status)

	_, err = svc.UpdateStatus(ctx, first.ID, model.ReportPending)
	assert.ErrorIs(t, err, ErrParamInvalid)
	_, err = svc.GetReport(ctx, "rep-missing")
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestNotificationService_Visibility(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mocks.NewMockUserRepo(ctrl)
	users.EXPECT().GetUserById(gomock.Any(), uint64(7)).Return(&model.User{ID: 7, Username: "sophia"}, nil)
	users.EXPECT().GetUserById(gomock.Any(), uint64(99)).Return(nil, nil)

	svc, err := NewNotificationService(ctx, newSnapshotStore(), users, &nopMedia{})
	require.NoError(t, err)

	b, err := svc.Send(ctx, &dto.NotificationSendDTO{Type: model.NotificationBroadcast, Message: "sale"})
	require.NoError(t, err)
	assert.Equal(t, "All Users", b.TargetUserName)

	p, err := svc.Send(ctx, &dto.NotificationSendDTO{Type: model.NotificationPersonal, TargetUserID: 7, Message: "shipped"})
	require.NoError(t, err)
	assert.Equal(t, "sophia", p.TargetUserName)

	_, err = svc.Send(ctx, &dto.NotificationSendDTO{Type: model.NotificationPersonal, TargetUserID: 99, Message: "x"})
	assert.ErrorIs(t, err, ErrTargetUserInvalid)

	assert.Len(t, svc.ListAll(ctx), 2)
	assert.Len(t, svc.ListMine(ctx, 7), 2)
	assert.Len(t, svc.ListMine(ctx, 8), 1)

	require.NoError(t, svc.MarkRead(ctx, 8, b.ID))
	mine := svc.ListMine(ctx, 8)
	assert.True(t, mine[0].IsRead)
	for _, n := range svc.ListMine(ctx, 7) {
		assert.False(t, n.IsRead, n.ID)
	}

	assert.ErrorIs(t, svc.MarkRead(ctx, 8, p.ID), ErrNotificationNotFound)
}
