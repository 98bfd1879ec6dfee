package repository

import (
	"testing"
	"time"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	require.NoError(t, repo.Register("ana@mail.com", "secreta123"))

	assert.NoError(t, repo.Authenticate("ana@mail.com", "secreta123"))
	assert.ErrorIs(t, repo.Authenticate("ana@mail.com", "otra"), ErrInvalidCredentials)
	assert.ErrorIs(t, repo.Authenticate("nadie@mail.com", "secreta123"), ErrInvalidCredentials)

	// Los emails son sensibles a mayúsculas, sin normalización
	assert.ErrorIs(t, repo.Authenticate("Ana@mail.com", "secreta123"), ErrInvalidCredentials)
}

func TestRegisterDuplicate(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)

	require.NoError(t, repo.Register("ana@mail.com", "secreta123"))
	require.NoError(t, repo.ClearSession())

	err := repo.Register("ana@mail.com", "otra456")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	// La credencial original no cambió y no se abrió sesión
	assert.NoError(t, repo.Authenticate("ana@mail.com", "secreta123"))
	var session models.User
	found, err := store.Get(storage.SessionKey, &session)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRegisterOpensSession(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)

	require.NoError(t, repo.Register("ana@mail.com", "secreta123"))

	var session models.User
	found, err := store.Get(storage.SessionKey, &session)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ana@mail.com", session.Email)
}

func TestSessionLifecycle(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	require.NoError(t, repo.SetSession("ana@mail.com"))
	user, err := repo.RestoreSession()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ana@mail.com", user.Email)

	// Cerrar sesión es idempotente
	require.NoError(t, repo.ClearSession())
	require.NoError(t, repo.ClearSession())

	user, err = repo.RestoreSession()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRestoreSessionCorrupted(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)

	// Un registro corrupto se limpia y se arranca sin sesión
	require.NoError(t, store.Set(storage.SessionKey, "no soy un objeto usuario"))

	user, err := repo.RestoreSession()
	require.NoError(t, err)
	assert.Nil(t, user)

	// El registro corrupto tiene que desaparecer del almacén
	var raw string
	found, err := store.Get(storage.SessionKey, &raw)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdatePassword(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	require.NoError(t, repo.Register("ana@mail.com", "secreta123"))
	require.NoError(t, repo.UpdatePassword("ana@mail.com", "nueva789"))

	assert.ErrorIs(t, repo.Authenticate("ana@mail.com", "secreta123"), ErrInvalidCredentials)
	assert.NoError(t, repo.Authenticate("ana@mail.com", "nueva789"))

	assert.ErrorIs(t, repo.UpdatePassword("nadie@mail.com", "x"), ErrUserNotFound)
}

func TestDeleteUserPurgesData(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)

	require.NoError(t, repo.Register("ana@mail.com", "secreta123"))
	require.NoError(t, store.Set(storage.MonthlyActiveKey("ana@mail.com"), models.MonthlyPlan{ID: "p1"}))

	require.NoError(t, repo.DeleteUser("ana@mail.com"))

	assert.ErrorIs(t, repo.Authenticate("ana@mail.com", "secreta123"), ErrInvalidCredentials)

	var plan models.MonthlyPlan
	found, err := store.Get(storage.MonthlyActiveKey("ana@mail.com"), &plan)
	require.NoError(t, err)
	assert.False(t, found)

	// La sesión del usuario eliminado también se limpia
	user, err := repo.RestoreSession()
	require.NoError(t, err)
	assert.Nil(t, user)

	assert.ErrorIs(t, repo.DeleteUser("ana@mail.com"), ErrUserNotFound)
}

func TestDeleteUserDoesNotTouchOtherUsers(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)

	// Un email que es prefijo de otro no puede arrastrar sus datos
	require.NoError(t, repo.Register("ana@mail.co", "secreta123"))
	require.NoError(t, repo.Register("ana@mail.com", "secreta123"))
	require.NoError(t, store.Set(storage.MonthlyActiveKey("ana@mail.com"), models.MonthlyPlan{ID: "p1"}))
	require.NoError(t, store.Set(storage.TradesKey("ana@mail.com", time.Now()), []models.Trade{{ID: "t1"}}))

	require.NoError(t, repo.DeleteUser("ana@mail.co"))

	assert.NoError(t, repo.Authenticate("ana@mail.com", "secreta123"))

	var plan models.MonthlyPlan
	found, err := store.Get(storage.MonthlyActiveKey("ana@mail.com"), &plan)
	require.NoError(t, err)
	assert.True(t, found)

	var trades []models.Trade
	found, err = store.Get(storage.TradesKey("ana@mail.com", time.Now()), &trades)
	require.NoError(t, err)
	assert.True(t, found)

	// El guion bajo tampoco funciona como comodín de un carácter
	require.NoError(t, repo.Register("john_doe@mail.com", "secreta123"))
	require.NoError(t, repo.Register("johnXdoe@mail.com", "secreta123"))
	require.NoError(t, store.Set(storage.TradesKey("johnXdoe@mail.com", time.Now()), []models.Trade{{ID: "t2"}}))

	require.NoError(t, repo.DeleteUser("john_doe@mail.com"))

	found, err = store.Get(storage.TradesKey("johnXdoe@mail.com", time.Now()), &trades)
	require.NoError(t, err)
	assert.True(t, found)
}
