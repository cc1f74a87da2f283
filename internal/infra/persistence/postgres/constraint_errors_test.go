package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintErrorDetection(t *testing.T) {
	wrapped := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{name: "unique from driver", err: wrapped(pgUniqueViolation), check: isUniqueConstraintViolation, want: true},
		{name: "unique from gorm", err: gorm.ErrDuplicatedKey, check: isUniqueConstraintViolation, want: true},
		{name: "foreign key", err: wrapped(pgForeignKeyViolation), check: isForeignKeyConstraintViolation, want: true},
		{name: "not null", err: wrapped(pgNotNullViolation), check: isNotNullConstraintViolation, want: true},
		{name: "check", err: wrapped(pgCheckViolation), check: isCheckConstraintViolation, want: true},
		{name: "other code", err: wrapped("42P01"), check: isUniqueConstraintViolation, want: false},
		{name: "plain error", err: fmt.Errorf("boom"), check: isForeignKeyConstraintViolation, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
