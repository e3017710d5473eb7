package adapthttp

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// writeMessage writes the {"message": ...} envelope of updates and deletes.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"message": msg})
}

// writeCreated writes the create envelope with the new id under key.
func writeCreated(w http.ResponseWriter, msg, key string, id int64) {
	writeJSON(w, http.StatusCreated, map[string]any{"message": msg, key: id})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, domain.ErrEmptyUpdate),
		errors.Is(err, domain.ErrBodyRequired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrSessionNotFound), errors.Is(err, app.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrUserInactive):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Internal errors are logged
// and replaced by a generic message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s failed request_id=%s: %v", r.Method, r.URL.Path, requestIDFrom(r.Context()), err)
		err = errors.New("internal server error")
	}
	writeError(w, status, err)
}

// parsePayload decodes a JSON object body with exact numbers. An absent or
// null body yields domain.ErrBodyRequired.
func parsePayload(w http.ResponseWriter, r *http.Request) (domain.Payload, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrBodyRequired
		}
		return nil, domain.Invalid("body", "is not valid JSON")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, domain.Invalid("body", "must contain a single JSON value")
	}
	if raw == nil {
		return nil, domain.ErrBodyRequired
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, domain.Invalid("body", "must be a JSON object")
	}
	return domain.NewPayload(obj)
}

// pathID parses the {id} wildcard as a positive integer.
func pathID(r *http.Request) (int64, error) {
	n, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.Invalid("id", "must be a positive integer")
	}
	return n, nil
}

// int64Query returns nil when key is absent.
func int64Query(r *http.Request, key string) (*int64, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, domain.Invalid(key, "must be an integer")
	}
	return &n, nil
}

func dateQuery(r *http.Request, key string) (*domain.Date, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(v)
	if err != nil {
		return nil, domain.Invalid(key, "must be a date in YYYY-MM-DD form")
	}
	return &d, nil
}

func boolQuery(r *http.Request, key string) (*bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, domain.Invalid(key, "must be true or false")
	}
	return &b, nil
}

// dateRange reads start_date and end_date.
func dateRange(r *http.Request) (start, end *domain.Date, err error) {
	if start, err = dateQuery(r, "start_date"); err != nil {
		return nil, nil, err
	}
	if end, err = dateQuery(r, "end_date"); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// dashboardFromDisk serves the dashboard's static files, falling back to
// index.html for unknown paths.
func dashboardFromDisk(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqPath := path.Clean("/" + r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}
		if _, err := os.Stat(path.Join(dir, reqPath)); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, indexPath)
	})
}
