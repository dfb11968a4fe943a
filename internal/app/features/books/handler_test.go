package books_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	booksfeature "github.com/bookhaven/bookhaven/internal/app/features/books"
	"github.com/bookhaven/bookhaven/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (chi.Router, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := booksfeature.NewHandler(db, zap.NewNop())

	r := chi.NewRouter()
	r.Mount("/books", booksfeature.Routes(h))
	return r, testutil.NewFixtures(t, db)
}

func TestGet_MalformedIDIsNotFound(t *testing.T) {
	// A malformed id never reaches the store, so no database is needed.
	h := &booksfeature.Handler{Log: zap.NewNop()}

	req := httptest.NewRequest("GET", "/books/not-an-id", nil)
	req = testutil.WithChiURLParam(req, "id", "not-an-id")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", rec.Code)
	}
}

func TestCreateAndGet_EndToEnd(t *testing.T) {
	r, _ := newRouter(t)

	body := `{"title":"Dune","author":"Frank Herbert","isbn":"9780441172719","pubYear":"1965"}`
	req := httptest.NewRequest("POST", "/books", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: got %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		PubYear string `json:"pubYear"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if created.PubYear != "1965" {
		t.Errorf("pubYear: got %q, want %q", created.PubYear, "1965")
	}

	req = httptest.NewRequest("GET", "/books/"+created.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: got %d", rec.Code)
	}
}

func TestGet_Missing(t *testing.T) {
	r, _ := newRouter(t)

	req := httptest.NewRequest("GET", "/books/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", rec.Code)
	}
}

func TestList(t *testing.T) {
	r, fixtures := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateBook(ctx, "A", "Author A")
	fixtures.CreateBook(ctx, "B", "Author B")

	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}

	var books []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &books); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(books) != 2 {
		t.Errorf("expected 2 books, got %d", len(books))
	}
}
