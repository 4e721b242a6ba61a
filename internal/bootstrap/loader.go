package bootstrap

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/coursehub/assignment-service/internal/models"
	"github.com/coursehub/assignment-service/internal/service"
)

// Loader seeds accounts from a CSV file at process start. The expected
// header is first_name,last_name,email,password in any column order.
type Loader struct {
	userService service.UserService
	logger      zerolog.Logger
}

func NewLoader(userService service.UserService, logger zerolog.Logger) *Loader {
	return &Loader{
		userService: userService,
		logger:      logger,
	}
}

// LoadFile reads the CSV at path and registers each row. Rows missing an
// email or password are skipped, as are emails that already have an
// account. A missing file is an error; the caller decides whether that is
// fatal.
func (l *Loader) LoadFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open bootstrap file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read bootstrap header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var loaded, skipped int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read bootstrap row: %w", err)
		}

		req := &models.CreateUserRequest{
			FirstName: field(record, columns, "first_name"),
			LastName:  field(record, columns, "last_name"),
			Email:     field(record, columns, "email"),
			Password:  field(record, columns, "password"),
		}

		if req.Email == "" || req.Password == "" {
			l.logger.Warn().
				Str("email", req.Email).
				Msg("Skipping bootstrap row without email or password")
			skipped++
			continue
		}

		if _, err := l.userService.Register(ctx, req); err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				skipped++
				continue
			}
			l.logger.Error().Err(err).
				Str("email", req.Email).
				Msg("Failed to load bootstrap user")
			skipped++
			continue
		}
		loaded++
	}

	l.logger.Info().
		Int("loaded", loaded).
		Int("skipped", skipped).
		Str("path", path).
		Msg("Bootstrap users loaded")

	return nil
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
