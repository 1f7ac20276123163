package hexforge

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/katalvlaran/hexforge/server"
)

var (
	setupOnce sync.Once
	handler   *server.Server
	setupErr  error
)

func init() {
	functions.HTTP("Generate", Generate)
}

// Generate is the Cloud Function entry point. It serves the same request
// and response as GET /api/generate. The template is built on the first call
// from the environment (see server.LoadConfig) and reused afterwards.
func Generate(w http.ResponseWriter, r *http.Request) {
	setupOnce.Do(func() {
		cfg, err := server.LoadConfig()
		if err != nil {
			setupErr = err
			return
		}
		handler, setupErr = server.New(cfg, slog.Default())
	})
	if setupErr != nil {
		slog.Error("hexforge setup failed", slog.Any("err", setupErr))
		http.Error(w, setupErr.Error(), http.StatusInternalServerError)
		return
	}
	handler.HandleGenerate(w, r)
}
