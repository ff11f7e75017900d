package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookswap/models"
	"bookswap/services"
)

func TestExchangeCreate(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", "owner@example.com")
	requester := createUser(t, db, "requester", "requester@example.com")
	requested := createBook(t, db, owner.ID, "Clean Code", 20)
	offered := createBook(t, db, requester.ID, "Refactoring", 30)

	service := services.NewExchangeService(db)
	request, err := service.Create("requester@example.com", requested.ID, offered.ID, "interested?")
	require.NoError(t, err)
	assert.Equal(t, models.ExchangeStatusPending, request.Status)
	assert.Equal(t, owner.ID, request.OwnerID)
	assert.Equal(t, requester.ID, request.RequesterID)
}

func TestExchangeCreateOwnBook(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", "owner@example.com")
	requested := createBook(t, db, owner.ID, "Clean Code", 20)
	offered := createBook(t, db, owner.ID, "Refactoring", 30)

	service := services.NewExchangeService(db)
	_, err := service.Create("owner@example.com", requested.ID, offered.ID, "")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestExchangeReceivedAndSent(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", "owner@example.com")
	requester := createUser(t, db, "requester", "requester@example.com")
	requested := createBook(t, db, owner.ID, "Clean Code", 20)
	offered := createBook(t, db, requester.ID, "Refactoring", 30)

	service := services.NewExchangeService(db)
	_, err := service.Create("requester@example.com", requested.ID, offered.ID, "")
	require.NoError(t, err)

	received, err := service.Received("owner@example.com")
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "requester", received[0].Requester.Username)
	assert.Equal(t, "Clean Code", received[0].RequestedBook.Title)

	sent, err := service.Sent("requester@example.com")
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "owner", sent[0].Owner.Username)

	// 對方視角是空的
	received, err = service.Received("requester@example.com")
	require.NoError(t, err)
	assert.Empty(t, received)
}

func TestExchangeAcceptAndDecline(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", "owner@example.com")
	requester := createUser(t, db, "requester", "requester@example.com")
	requested := createBook(t, db, owner.ID, "Clean Code", 20)
	offered := createBook(t, db, requester.ID, "Refactoring", 30)

	service := services.NewExchangeService(db)
	request, err := service.Create("requester@example.com", requested.ID, offered.ID, "")
	require.NoError(t, err)

	// 只有 owner 可以處理請求
	_, err = service.Accept(request.ID, "requester@example.com")
	assert.ErrorIs(t, err, services.ErrForbidden)

	accepted, err := service.Accept(request.ID, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.ExchangeStatusAccepted, accepted.Status)

	// 終止狀態不可再轉換
	_, err = service.Decline(request.ID, "owner@example.com")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestExchangeDecline(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", "owner@example.com")
	requester := createUser(t, db, "requester", "requester@example.com")
	requested := createBook(t, db, owner.ID, "Clean Code", 20)
	offered := createBook(t, db, requester.ID, "Refactoring", 30)

	service := services.NewExchangeService(db)
	request, err := service.Create("requester@example.com", requested.ID, offered.ID, "")
	require.NoError(t, err)

	declined, err := service.Decline(request.ID, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.ExchangeStatusDeclined, declined.Status)
}

func TestExchangeCancel(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", "owner@example.com")
	requester := createUser(t, db, "requester", "requester@example.com")
	requested := createBook(t, db, owner.ID, "Clean Code", 20)
	offered := createBook(t, db, requester.ID, "Refactoring", 30)

	service := services.NewExchangeService(db)
	request, err := service.Create("requester@example.com", requested.ID, offered.ID, "")
	require.NoError(t, err)

	// 只有 requester 可以取消
	err = service.Cancel(request.ID, "owner@example.com")
	assert.ErrorIs(t, err, services.ErrForbidden)

	require.NoError(t, service.Cancel(request.ID, "requester@example.com"))

	// 取消後請求已不存在
	err = service.Cancel(request.ID, "requester@example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestExchangeCancelNonPending(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner", "owner@example.com")
	requester := createUser(t, db, "requester", "requester@example.com")
	requested := createBook(t, db, owner.ID, "Clean Code", 20)
	offered := createBook(t, db, requester.ID, "Refactoring", 30)

	service := services.NewExchangeService(db)
	request, err := service.Create("requester@example.com", requested.ID, offered.ID, "")
	require.NoError(t, err)

	_, err = service.Accept(request.ID, "owner@example.com")
	require.NoError(t, err)

	// 已處理的請求不可取消
	err = service.Cancel(request.ID, "requester@example.com")
	assert.ErrorIs(t, err, services.ErrConflict)
}
