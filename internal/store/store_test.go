package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltest/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "records.yaml"), nil)
}

func sampleUser(name string) domain.User {
	return domain.User{
		Username:     name,
		PasswordHash: "deadbeef",
		Name:         "Test " + name,
		Email:        name + "@example.com",
		CreatedAt:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestEnsureInitializedIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureInitialized())
	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	require.NoError(t, s.EnsureInitialized())
	second, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	users, results := s.LoadAll()
	assert.Empty(t, users)
	assert.Empty(t, results)
}

func TestEnsureInitializedKeepsExistingData(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendUser(sampleUser("alice")))

	require.NoError(t, s.EnsureInitialized())

	users, _ := s.LoadAll()
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestAppendUserRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendUser(sampleUser("alice")))
	require.NoError(t, s.AppendUser(sampleUser("bob")))

	users, results := s.LoadAll()
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, sampleUser("bob"), users[1])
	assert.Empty(t, results)
}

func TestAppendUserRejectsDuplicate(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendUser(sampleUser("alice")))

	err := s.AppendUser(sampleUser("alice"))
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	users, _ := s.LoadAll()
	assert.Len(t, users, 1)
}

func TestAppendResultCarriesUsers(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendUser(sampleUser("alice")))

	selected := 1
	res := domain.Result{
		Username: "alice",
		Language: "Python",
		Score:    1,
		Total:    2,
		Date:     time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC),
		Details: []domain.AnswerDetail{
			{Question: "q1", Selected: &selected, Correct: 1},
			{Question: "q2", Selected: nil, Correct: 0},
		},
	}
	require.NoError(t, s.AppendResult(res))

	users, results := s.LoadAll()
	require.Len(t, users, 1)
	require.Len(t, results, 1)
	assert.Equal(t, res, results[0])
	require.NotNil(t, results[0].Details[0].Selected)
	assert.Nil(t, results[0].Details[1].Selected)
}

func TestFailedWriteLeavesStoreUntouched(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendUser(sampleUser("alice")))
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	s.writeFile = func(string, []byte, os.FileMode) error {
		return errors.New("disk full")
	}
	err = s.AppendResult(domain.Result{Username: "alice", Language: "C", Total: 1})
	require.Error(t, err)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after, "canonical artifact must keep its pre-append state")

	s.writeFile = os.WriteFile
	_, results := s.LoadAll()
	assert.Empty(t, results)
}

func TestLoadAllToleratesCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not: [valid yaml"), 0o600))

	users, results := s.LoadAll()
	assert.Empty(t, users)
	assert.Empty(t, results)
}

func TestLoadAllMissingFile(t *testing.T) {
	s := newTestStore(t)
	users, results := s.LoadAll()
	assert.Empty(t, users)
	assert.Empty(t, results)
}

func TestTransactApplyErrorDoesNotWrite(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendUser(sampleUser("alice")))
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.Transact(func(doc *Document) error {
		doc.Users = nil // mutation must not leak out when apply fails
		return boom
	})
	require.ErrorIs(t, err, boom)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
