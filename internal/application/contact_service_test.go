package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangearhq/fangear-api/internal/application"
	"github.com/fangearhq/fangear-api/internal/domain/entity"
)

type fakeContactRepo struct {
	created   []entity.Contact
	createErr error
}

func (f *fakeContactRepo) Create(_ context.Context, c *entity.Contact) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *c)
	return nil
}

type fakePublisher struct {
	published []any
	err       error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, body)
	return nil
}

// TestContactService_Submit_StoresAndPublishes verifies the row is
// persisted and a notification job is queued.
func TestContactService_Submit_StoresAndPublishes(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	pub := &fakePublisher{}
	svc := application.NewContactService(repo, pub, nil)

	msg := &entity.Contact{Name: "Dana", Email: "dana@example.com", Comment: "Wrong size shipped"}
	require.NoError(t, svc.Submit(context.Background(), msg))

	require.Len(t, repo.created, 1)
	assert.Len(t, pub.published, 1)
}

// TestContactService_Submit_PublishFailureIsNotFatal verifies a queue
// failure does not fail the submission once the row is stored.
func TestContactService_Submit_PublishFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := application.NewContactService(repo, pub, nil)

	err := svc.Submit(context.Background(), &entity.Contact{Name: "Dana", Email: "d@example.com"})
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

// TestContactService_Submit_StoreFailure verifies an insert failure is
// returned and nothing is published.
func TestContactService_Submit_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{createErr: errors.New("insert failed")}
	pub := &fakePublisher{}
	svc := application.NewContactService(repo, pub, nil)

	err := svc.Submit(context.Background(), &entity.Contact{Name: "Dana"})
	require.Error(t, err)
	assert.Empty(t, pub.published)
}

// TestContactService_Submit_NilPublisher verifies notifications are
// cleanly optional.
func TestContactService_Submit_NilPublisher(t *testing.T) {
	t.Parallel()

	svc := application.NewContactService(&fakeContactRepo{}, nil, nil)
	require.NoError(t, svc.Submit(context.Background(), &entity.Contact{Name: "Dana"}))
}
