package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dogsapi/internal/locale"
)

func TestResolveEnglish(t *testing.T) {
	catalog, err := locale.NewCatalog()
	require.NoError(t, err)

	msg := catalog.Resolve("en", "error.invalid.enum", map[string]interface{}{
		"Value":   "IN_SERV",
		"Field":   "currentStatus",
		"Allowed": "IN_TRAINING, IN_SERVICE, RETIRED, LEFT",
	})
	require.Equal(t,
		"Invalid value IN_SERV for field currentStatus. Allowed values are: IN_TRAINING, IN_SERVICE, RETIRED, LEFT",
		msg)
}

func TestResolveSpanish(t *testing.T) {
	catalog, err := locale.NewCatalog()
	require.NoError(t, err)

	msg := catalog.Resolve("es", "records.not.found", nil)
	require.Equal(t, "No se encontraron registros", msg)
}

func TestResolveAcceptLanguageHeader(t *testing.T) {
	catalog, err := locale.NewCatalog()
	require.NoError(t, err)

	msg := catalog.Resolve("es-AR,es;q=0.9,en;q=0.8", "invalid.supplier.reference", nil)
	require.Equal(t, "Proveedor no encontrado", msg)
}

func TestResolveUnknownLanguageFallsBackToEnglish(t *testing.T) {
	catalog, err := locale.NewCatalog()
	require.NoError(t, err)

	msg := catalog.Resolve("de", "records.not.found", nil)
	require.Equal(t, "No records found", msg)
}

func TestResolveUnknownKeyReturnsKey(t *testing.T) {
	catalog, err := locale.NewCatalog()
	require.NoError(t, err)

	msg := catalog.Resolve("en", "no.such.key", nil)
	require.Equal(t, "no.such.key", msg)
}
