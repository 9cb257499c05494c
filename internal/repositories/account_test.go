package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupAccountPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		account_id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestAccountWriteRepository_Save(t *testing.T) {
	db, teardown := setupAccountPostgresContainer(t)
	defer teardown()

	repo := NewAccountWriteRepository(db, nil)
	ctx := context.Background()

	id, err := repo.Save(ctx, "Sharma Transport", "9876543210")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	var account struct {
		Name  string `db:"name"`
		Phone string `db:"phone"`
	}
	err = db.Get(&account, "SELECT name, phone FROM accounts WHERE account_id=$1", id)
	assert.NoError(t, err)

	assert.Equal(t, "Sharma Transport", account.Name)
	assert.Equal(t, "9876543210", account.Phone)
}

func TestAccountReadRepository(t *testing.T) {
	db, teardown := setupAccountPostgresContainer(t)
	defer teardown()

	writeRepo := NewAccountWriteRepository(db, nil)
	readRepo := NewAccountReadRepository(db)
	ctx := context.Background()

	sharmaID, err := writeRepo.Save(ctx, "Sharma Transport", "9876543210")
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, "Patel Logistics", "9123456780")
	require.NoError(t, err)

	t.Run("GetByID", func(t *testing.T) {
		account, err := readRepo.GetByID(ctx, sharmaID)
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, "Sharma Transport", account.Name)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		account, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("ListOrderedByName", func(t *testing.T) {
		accounts, err := readRepo.List(ctx)
		assert.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "Patel Logistics", accounts[0].Name)
		assert.Equal(t, "Sharma Transport", accounts[1].Name)
	})
}
