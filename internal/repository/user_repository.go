package repository

import (
	"github.com/MatiasFerreyra/Journal_Api/internal/models"
	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository administra el registro de credenciales y la sesión activa.
// Los emails se usan tal como llegan: sensibles a mayúsculas, sin normalizar.
type UserRepository struct {
	store *storage.Store
}

func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) getCredentials() (models.Credentials, error) {
	creds := models.Credentials{}
	if _, err := r.store.Get(storage.UsersKey, &creds); err != nil {
		return nil, err
	}
	if creds == nil {
		creds = models.Credentials{}
	}
	return creds, nil
}

// Register agrega la credencial y establece la sesión para ese email.
// Falla con ErrUserAlreadyExists sin tocar el registro ni la sesión si el
// email ya estaba registrado.
func (r *UserRepository) Register(email, password string) error {
	creds, err := r.getCredentials()
	if err != nil {
		return err
	}

	if _, exists := creds[email]; exists {
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	creds[email] = string(hashedPassword)
	if err := r.store.Set(storage.UsersKey, creds); err != nil {
		return err
	}

	return r.SetSession(email)
}

// Authenticate verifica email y contraseña. Un email desconocido y una
// contraseña incorrecta producen el mismo error.
func (r *UserRepository) Authenticate(email, password string) error {
	creds, err := r.getCredentials()
	if err != nil {
		return err
	}

	hash, exists := creds[email]
	if !exists {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// UpdatePassword reemplaza la contraseña de un usuario ya registrado.
func (r *UserRepository) UpdatePassword(email, password string) error {
	creds, err := r.getCredentials()
	if err != nil {
		return err
	}

	if _, exists := creds[email]; !exists {
		return ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	creds[email] = string(hashedPassword)
	return r.store.Set(storage.UsersKey, creds)
}

// SetSession persiste la sesión activa. La última sesión escrita gana.
func (r *UserRepository) SetSession(email string) error {
	return r.store.Set(storage.SessionKey, models.User{Email: email})
}

// ClearSession cierra la sesión. Es idempotente.
func (r *UserRepository) ClearSession() error {
	return r.store.Remove(storage.SessionKey)
}

// RestoreSession recupera la sesión persistida al arrancar. Si el registro
// está corrupto o ausente, lo limpia y devuelve nil. Se invoca una sola vez.
func (r *UserRepository) RestoreSession() (*models.User, error) {
	var user models.User
	found, err := r.store.Get(storage.SessionKey, &user)
	if err != nil {
		return nil, err
	}
	if !found || user.Email == "" {
		if err := r.store.Remove(storage.SessionKey); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &user, nil
}

// ListEmails devuelve los emails registrados (para el panel de administración).
func (r *UserRepository) ListEmails() ([]string, error) {
	creds, err := r.getCredentials()
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(creds))
	for email := range creds {
		emails = append(emails, email)
	}
	return emails, nil
}

// DeleteUser elimina la credencial y purga todos los datos del usuario:
// planes diarios, diario de operaciones y planes mensuales.
func (r *UserRepository) DeleteUser(email string) error {
	creds, err := r.getCredentials()
	if err != nil {
		return err
	}

	if _, exists := creds[email]; !exists {
		return ErrUserNotFound
	}

	delete(creds, email)
	if err := r.store.Set(storage.UsersKey, creds); err != nil {
		return err
	}

	for _, prefix := range storage.UserKeyPrefixes(email) {
		if err := r.store.RemoveByPrefix(prefix); err != nil {
			return err
		}
	}

	// Si la sesión persistida era de este usuario, también se limpia
	var session models.User
	if found, err := r.store.Get(storage.SessionKey, &session); err == nil && found && session.Email == email {
		return r.store.Remove(storage.SessionKey)
	}
	return nil
}
