package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/stanfordsilicon/LexRay"
)

type server struct {
	converter *lexray.Converter
	registry  *lexray.Registry
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dataDir := flag.String("data", "", "directory of <language>_dictionary files (or LEXRAY_DATA_DIR)")
	flag.Parse()

	if *dataDir == "" {
		*dataDir = os.Getenv("LEXRAY_DATA_DIR")
	}
	if *dataDir == "" {
		fmt.Fprintln(os.Stderr, "lexray-server: -data directory is required (or set LEXRAY_DATA_DIR)")
		os.Exit(1)
	}

	converter, err := lexray.New()
	if err != nil {
		log.Fatal(err)
	}
	s := &server{converter: converter, registry: lexray.NewRegistry(*dataDir)}

	http.HandleFunc("/api/languages", s.handleLanguages)
	http.HandleFunc("/api/process", s.handleProcess)

	fmt.Printf("Server starting on http://localhost%s\n", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}

type languagePayload struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func (s *server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names, err := s.registry.Languages()
	if err != nil {
		log.Printf("languages: %v", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	listed := make([]languagePayload, 0, len(names))
	for _, name := range names {
		listed = append(listed, languagePayload{Name: name, DisplayName: s.registry.DisplayName(name)})
	}
	writeJSON(w, http.StatusOK, listed)
}

type processRequest struct {
	Mode        string `json:"mode"`
	English     string `json:"english"`
	Translation string `json:"translation"`
	Language    string `json:"language"`
}

type mapPayload struct {
	EnglishSkeleton string   `json:"english_skeleton"`
	TargetSkeletons []string `json:"target_skeletons"`
	Language        string   `json:"language"`
	PatternID       string   `json:"pattern_id,omitempty"`
}

func (s *server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	switch req.Mode {
	case "english":
		result, err := s.converter.SkeletonFor(req.English)
		if err != nil {
			log.Printf("process english: %v", err)
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "map":
		dict, err := s.registry.Dictionary(req.Language)
		if err != nil {
			log.Printf("process map: %v", err)
			writeError(w, http.StatusBadRequest, err)
			return
		}
		result, err := s.converter.SkeletonFor(req.English)
		if err != nil {
			log.Printf("process map: %v", err)
			writeError(w, http.StatusBadRequest, err)
			return
		}
		targets, err := s.converter.MapToTarget(dict, req.Translation, req.English, result.Skeleton, result.Ambiguities)
		if err != nil {
			log.Printf("process map: %v", err)
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, mapPayload{
			EnglishSkeleton: result.Skeleton,
			TargetSkeletons: targets,
			Language:        req.Language,
			PatternID:       s.converter.PatternID(result.Skeleton),
		})

	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown mode %q", req.Mode))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
