package domain

// errors.go — taxonomía de errores del engine.
//
// ValidationError (ErrNoUser/ErrNoTiles): error del caller, se reporta al
// usuario tal cual y no se reintenta. StoreError: fallo del store, se mapea
// a un mensaje amigable por código o por keywords del mensaje. ErrNotFound:
// borrado de un id inexistente. ErrIndexOutOfRange (checklist.go): error de
// programación, fatal/loggeado, nunca user-facing.

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoTiles indica un intento de guardar sin tiles.
	ErrNoTiles = errors.New("no tiles to save")
	// ErrNoUser indica que no hay usuario autenticado en el save.
	ErrNoUser = errors.New("you must be signed in to save a trade")
	// ErrNotFound indica que ningún record tiene el id pedido.
	ErrNotFound = errors.New("trade not found")
)

// StoreCode clasifica un fallo del store para el mapping de mensajes.
type StoreCode string

const (
	StoreDuplicate    StoreCode = "duplicate"
	StoreMissingTable StoreCode = "missing_table"
	StoreNetwork      StoreCode = "network"
	StoreUnknown      StoreCode = "unknown"
)

// StoreError envuelve un fallo del adapter de storage con su clasificación.
type StoreError struct {
	Code StoreCode
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error (%s): %v", e.Code, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ClassifyStoreErr clasifica un error del driver inspeccionando su mensaje.
// Es best-effort: cualquier cosa no reconocida queda como StoreUnknown y el
// mensaje crudo llega al usuario.
func ClassifyStoreErr(err error) *StoreError {
	msg := strings.ToLower(err.Error())
	code := StoreUnknown
	switch {
	case strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505"):
		code = StoreDuplicate
	case strings.Contains(msg, "no such table") || strings.Contains(msg, "42p01"):
		code = StoreMissingTable
	case strings.Contains(msg, "network") || strings.Contains(msg, "connection"):
		code = StoreNetwork
	}
	return &StoreError{Code: code, Err: err}
}

// FriendlyMessage traduce cualquier error del engine a un mensaje apto para
// mostrar al usuario. El mapping no es exhaustivo: un error sin match
// devuelve su propio mensaje, y uno vacío cae al genérico.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNoUser):
		return "You must be signed in to save."
	case errors.Is(err, ErrNoTiles):
		return "No tiles to save."
	case errors.Is(err, ErrNotFound):
		return "Trade not found."
	}

	var se *StoreError
	if errors.As(err, &se) {
		switch se.Code {
		case StoreDuplicate:
			return "This trade already exists."
		case StoreMissingTable:
			return "Database table not found (trades)."
		case StoreNetwork:
			return "Network error. Check your internet connection."
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Something went wrong. Please try again."
}
