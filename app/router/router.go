package router

import (
	"net/http"
	"strconv"
	"strings"

	"patternshelf/app/controller"
	"patternshelf/app/middleware"
)

// Controllers bundles every controller the router dispatches to.
type Controllers struct {
	Auth       *controller.AuthController
	Pattern    *controller.PatternController
	PatternPDF *controller.PatternPDFController
	Scrape     *controller.ScrapeController
	Import     *controller.ImportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// parseID extracts the leading numeric id from a path remainder like "12"
// or "12/image", returning the id and whatever follows the id segment.
func parseID(path string) (int, string, bool) {
	seg, rest, _ := strings.Cut(path, "/")
	id, err := strconv.Atoi(seg)
	if err != nil || id <= 0 {
		return 0, "", false
	}
	return id, strings.TrimSuffix(rest, "/"), true
}

// SetupRoutes registers all routes on the default mux. Mutating endpoints
// are wrapped in the auth middleware.
func SetupRoutes(c *Controllers, auth *middleware.AuthMiddleware) {
	// Health check
	http.HandleFunc("/ping", pingHandler)

	// Auth routes
	http.HandleFunc("/api/auth/register", c.Auth.Register)
	http.HandleFunc("/api/auth/login", c.Auth.Login)
	http.HandleFunc("/api/auth/refresh", c.Auth.Refresh)
	http.HandleFunc("/api/auth/me", auth.RequireAuth(c.Auth.Me))

	// Pattern collection
	http.HandleFunc("/api/patterns", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			c.Pattern.List(w, r)
		case http.MethodPost:
			auth.RequireAuth(c.Pattern.Create)(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Pattern by id plus its image and pdfs subresources
	http.HandleFunc("/api/patterns/", func(w http.ResponseWriter, r *http.Request) {
		id, rest, ok := parseID(strings.TrimPrefix(r.URL.Path, "/api/patterns/"))
		if !ok {
			http.Error(w, "Invalid pattern id", http.StatusBadRequest)
			return
		}

		switch rest {
		case "":
			switch r.Method {
			case http.MethodGet:
				c.Pattern.Get(w, r, id)
			case http.MethodPut:
				auth.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
					c.Pattern.Update(w, r, id)
				})(w, r)
			case http.MethodDelete:
				auth.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
					c.Pattern.Delete(w, r, id)
				})(w, r)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		case "image":
			switch r.Method {
			case http.MethodGet:
				c.Pattern.GetImage(w, r, id)
			case http.MethodPost:
				auth.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
					c.Pattern.UploadImage(w, r, id)
				})(w, r)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		case "pdfs":
			switch r.Method {
			case http.MethodGet:
				c.PatternPDF.ListForPattern(w, r, id)
			case http.MethodPost:
				auth.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
					c.PatternPDF.Upload(w, r, id)
				})(w, r)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		default:
			http.Error(w, "Not found", http.StatusNotFound)
		}
	})

	// PDF collection
	http.HandleFunc("/api/pdfs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		c.PatternPDF.ListAll(w, r)
	})

	// PDF by id
	http.HandleFunc("/api/pdfs/", func(w http.ResponseWriter, r *http.Request) {
		id, rest, ok := parseID(strings.TrimPrefix(r.URL.Path, "/api/pdfs/"))
		if !ok || rest != "" {
			http.Error(w, "Invalid PDF id", http.StatusBadRequest)
			return
		}

		switch r.Method {
		case http.MethodGet:
			c.PatternPDF.Get(w, r, id)
		case http.MethodDelete:
			auth.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				c.PatternPDF.Delete(w, r, id)
			})(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Scrape-and-upsert
	http.HandleFunc("/api/scrape", auth.RequireAuth(c.Scrape.Scrape))

	// Drive PDF bulk import (admin only)
	http.HandleFunc("/api/admin/pdfs/import", auth.RequireAuth(c.Import.Import))
}
