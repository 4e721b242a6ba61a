package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/assignment-service/internal/models"
	"github.com/coursehub/assignment-service/internal/service"
)

type recordingUserService struct {
	registered []*models.CreateUserRequest
	existing   map[string]bool
}

func (s *recordingUserService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if s.existing[req.Email] {
		return nil, service.ErrEmailTaken
	}
	s.registered = append(s.registered, req)
	return &models.User{ID: "id-" + req.Email, Email: req.Email}, nil
}

func (s *recordingUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	return nil, service.ErrInvalidCredentials
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoaderLoadFile(t *testing.T) {
	svc := &recordingUserService{existing: map[string]bool{"dupe@example.com": true}}
	loader := NewLoader(svc, zerolog.Nop())

	path := writeCSV(t, "first_name,last_name,email,password\n"+
		"Jane,Doe,jane@example.com,abc123\n"+
		"John,Smith,john@example.com,def456\n"+
		"Dupe,User,dupe@example.com,xyz789\n"+
		"NoPass,User,nopass@example.com,\n")

	require.NoError(t, loader.LoadFile(context.Background(), path))

	require.Len(t, svc.registered, 2)
	assert.Equal(t, "jane@example.com", svc.registered[0].Email)
	assert.Equal(t, "Jane", svc.registered[0].FirstName)
	assert.Equal(t, "Doe", svc.registered[0].LastName)
	assert.Equal(t, "abc123", svc.registered[0].Password)
	assert.Equal(t, "john@example.com", svc.registered[1].Email)
}

func TestLoaderColumnOrderIndependent(t *testing.T) {
	svc := &recordingUserService{}
	loader := NewLoader(svc, zerolog.Nop())

	path := writeCSV(t, "email,password,last_name,first_name\n"+
		"jane@example.com,abc123,Doe,Jane\n")

	require.NoError(t, loader.LoadFile(context.Background(), path))

	require.Len(t, svc.registered, 1)
	assert.Equal(t, "Jane", svc.registered[0].FirstName)
	assert.Equal(t, "abc123", svc.registered[0].Password)
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader(&recordingUserService{}, zerolog.Nop())

	err := loader.LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
