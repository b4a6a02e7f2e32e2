package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Intent routes take no auth middleware. The caller has no account
// session yet and identifies itself via the X-Session-Key header.
func wireIntent(r chi.Router, intentHandler *adaptor.IntentHandler) {
	r.Post("/api/intents", intentHandler.SaveIntent)
	r.Get("/api/intents", intentHandler.PeekIntent)
	r.Post("/api/intents/consume", intentHandler.ConsumeIntent)
	r.Delete("/api/intents", intentHandler.ClearIntent)
}
