package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calyptra/aleamidi/config"
	"github.com/calyptra/aleamidi/generate"
	"github.com/calyptra/aleamidi/logger"
	"github.com/calyptra/aleamidi/midi"
	"github.com/calyptra/aleamidi/model"
	"github.com/calyptra/aleamidi/words"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves generation over HTTP",
	Long:  `Runs an HTTP server that generates compositions on demand and serves the resulting MIDI files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

type server struct {
	cfg config.Config
	log *zap.SugaredLogger
}

func serve() error {
	log := logger.New()
	defer log.Sync()

	cfg := config.Load()
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return err
	}

	s := &server{cfg: cfg, log: log}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", s.handleGenerate).Methods("POST")
	router.HandleFunc("/download/{id}", s.handleDownload).Methods("GET")

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Infow("serving", "addr", addr, "outDir", cfg.OutDir)
	return http.ListenAndServe(addr, cors.Default().Handler(router))
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}

	g := generate.NewRandom()
	if req.Seed != 0 {
		g = generate.New(req.Seed)
	}
	if s.cfg.WordListURL != "" {
		g.SetTitleSource(words.NewRemote(s.cfg.WordListURL))
	}

	data, err := mapData(req.Data, dataTypeOrDefault(req.DataType))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	comp, err := g.NewComposition(data)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if req.Title != "" {
		comp.Title = req.Title
	}
	if req.Composer != "" {
		comp.Composer = req.Composer
	}

	id := uuid.New().String()
	path := filepath.Join(s.cfg.OutDir, id+".mid")
	if err := midi.Export(comp, path); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Infow("generated", "id", id, "title", comp.Title, "tempo", comp.Tempo)
	json.NewEncoder(w).Encode(model.GenerateResponse{
		ID:       id,
		Title:    comp.Title,
		Composer: comp.Composer,
		Tempo:    comp.Tempo,
		Parts:    len(comp.Parts()),
		Download: "/download/" + id,
	})
}

func (s *server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	http.ServeFile(w, r, filepath.Join(s.cfg.OutDir, id+".mid"))
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.log.Warnw("request failed", "status", status, "detail", msg)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func dataTypeOrDefault(t string) string {
	if t == "" {
		return "chars"
	}
	return t
}
