package storage

import (
	"database/sql"
	"encoding/json"
	"log"
)

// Store es el acceso clave/valor persistente de la aplicación. Reemplaza el
// localStorage del cliente original: claves string, valores JSON, escritura
// síncrona e inmediata en cada Set/Remove.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get deserializa el valor de key en dest y devuelve si existía. Nunca
// propaga errores de deserialización: un valor corrupto se registra en el
// log y se informa como ausente, dejando a dest con su valor por defecto.
func (s *Store) Get(key string, dest any) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM journal_store WHERE key = $1`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("Valor corrupto en la clave %s, se usa el valor por defecto: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Set serializa value y lo escribe bajo key, reemplazando el valor anterior.
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO journal_store (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	_, err = s.db.Exec(query, key, string(raw))
	return err
}

// Remove elimina la clave. Es idempotente: no falla si la clave no existe.
func (s *Store) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM journal_store WHERE key = $1`, key)
	return err
}

// RemoveByPrefix elimina todas las claves que empiezan con prefix.
// Se usa para purgar el espacio de nombres completo de un usuario.
// La comparación es por substring literal y no con LIKE: el prefijo
// contiene el email del usuario, y los comodines de LIKE (_, %) harían
// que la purga alcance claves de otros usuarios.
func (s *Store) RemoveByPrefix(prefix string) error {
	_, err := s.db.Exec(`DELETE FROM journal_store WHERE substr(key, 1, length($1)) = $1`, prefix)
	return err
}
