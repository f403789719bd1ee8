package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-crud/app/api/handlers"
	"github.com/ribgsilva/note-crud/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-crud/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-crud/business/v1/note"
	"github.com/ribgsilva/note-crud/platform/dbtest"
	"github.com/ribgsilva/note-crud/platform/web/handler"
	"github.com/ribgsilva/note-crud/sys"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type NoteTests struct {
	app   http.Handler
	cache *miniredis.Miniredis
}

func newNoteTests(t *testing.T) *NoteTests {
	gin.SetMode(gin.TestMode)

	// =======================================================================================================
	// Setup resources
	s := dbtest.Setup(t, true)

	// =======================================================================================================
	// Setup router
	engine := gin.New()
	engine.Use(handlers.Recovery())

	handlers.MapDefaults(engine)
	handlers.MapApi(engine)
	handlers.MapFallbacks(engine)

	return &NoteTests{app: engine, cache: s}
}

func TestNote(t *testing.T) {
	nt := newNoteTests(t)

	// =======================================================================================================
	// Run tests

	nt.healthcheck200(t)
	nt.createScenario(t)
	nt.createBadRequest(t)
	nt.getRoundtrip(t)
	nt.getBadID(t)
	nt.updatePartial(t)
	nt.updateEmptyBody(t)
	nt.updateTitleConflict(t)
	nt.deleteFlow(t)
	nt.unknownRoute(t)
}

func TestNotePagination(t *testing.T) {
	nt := newNoteTests(t)

	var ids []string
	for i := 1; i <= 5; i++ {
		created := nt.create(t, fmt.Sprintf(`{"title":"note %d","content":"content %d"}`, i, i))
		ids = append(ids, created.Id.String())
	}

	first := nt.list(t, "?limit=2&page=1")
	second := nt.list(t, "?limit=2&page=2")

	if first.Results != 2 || second.Results != 2 {
		t.Fatalf("Test pagination: Should receive 2 notes per page: %d and %d", first.Results, second.Results)
	}

	seen := map[string]bool{}
	for _, n := range append(first.Notes, second.Notes...) {
		if seen[n.Id.String()] {
			t.Fatalf("Test pagination: Should not receive %s twice", n.Id)
		}
		seen[n.Id.String()] = true
	}
	for _, id := range ids[:4] {
		if !seen[id] {
			t.Fatalf("Test pagination: Should have received %s in the first two pages: %v", id, seen)
		}
	}

	third := nt.list(t, "?limit=2&page=3")
	if third.Results != 1 || third.Notes[0].Id.String() != ids[4] {
		t.Fatalf("Test pagination: Should receive only the last note on page 3: %+v", third)
	}

	all := nt.list(t, "")
	if all.Results != 5 {
		t.Fatalf("Test pagination: Should receive all 5 notes with the default limit: %d", all.Results)
	}

	beyond := nt.list(t, "?page=9")
	if beyond.Results != 0 || beyond.Notes == nil {
		t.Fatalf("Test pagination: Should receive an empty list past the end: %+v", beyond)
	}

	// (page-1)*limit does not fit an int
	for _, q := range []string{"?page=0", "?limit=-1", "?limit=ten", "?page=4611686018427387905&limit=4", "?page=9223372036854775807"} {
		w := nt.do(http.MethodGet, "/api/notes"+q, "")
		assertError(t, w, http.StatusBadRequest, "Bad request")
	}
}

func (nt *NoteTests) do(method, path, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()

	nt.app.ServeHTTP(w, r)
	return w
}

func (nt *NoteTests) create(t *testing.T, body string) note.Note {
	w := nt.do(http.MethodPost, "/api/notes/", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Test create: Should receive a status code of 201 for the response : %v %s", w.Code, w.Body)
	}
	var resp notes.NoteResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test create: Should be able to unmarshal the response : %v", err)
	}
	return resp.Data.Note
}

func (nt *NoteTests) get(t *testing.T, id string) note.Note {
	w := nt.do(http.MethodGet, "/api/notes/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test get: Should receive a status code of 200 for the response : %v %s", w.Code, w.Body)
	}
	var resp notes.NoteResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test get: Should be able to unmarshal the response : %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("Test get: Should have received \"success\" as status: %v", resp)
	}
	return resp.Data.Note
}

func (nt *NoteTests) list(t *testing.T, query string) notes.ListResponse {
	w := nt.do(http.MethodGet, "/api/notes"+query, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test list: Should receive a status code of 200 for the response : %v %s", w.Code, w.Body)
	}
	var resp notes.ListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test list: Should be able to unmarshal the response : %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("Test list: Should have received \"success\" as status: %v", resp)
	}
	return resp
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("Should receive a status code of %d for the response : %v %s", status, w.Code, w.Body)
	}
	var resp handler.Error
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Should be able to unmarshal the error response : %v", err)
	}
	if resp.Status != "Error" {
		t.Fatalf("Should have received \"Error\" as status in the response: %v", resp)
	}
	if resp.Message != message {
		t.Fatalf("Should have received %q as error_message in the response: %v", message, resp)
	}
}

func (nt *NoteTests) healthcheck200(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/healthchecker", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test healthcheck200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp healthcheck.Health
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test healthcheck200: Should be able to unmarshal the response : %v", err)
	}
	if resp.Status != "success" || resp.Message != "Simple health checker service is running!" {
		t.Fatalf("Test healthcheck200: Should have received the fixed health payload: %v", resp)
	}
}

func (nt *NoteTests) createScenario(t *testing.T) {
	created := nt.create(t, `{"title":"A","content":"B"}`)
	if created.Title != "A" {
		t.Fatalf("Test createScenario: Should have received \"A\" as title in the response: %v", created)
	}
	if created.Category != "" {
		t.Fatalf("Test createScenario: Should have received an empty category in the response: %v", created)
	}
	if created.Published {
		t.Fatalf("Test createScenario: Should have received an unpublished note: %v", created)
	}

	w := nt.do(http.MethodPost, "/api/notes/", `{"title":"A","content":"B"}`)
	assertError(t, w, http.StatusConflict, "Note with that title already exists")

	if n := dbtest.Count(t, "A"); n != 1 {
		t.Fatalf("Test createScenario: Should have exactly one note titled A: %d", n)
	}
}

func (nt *NoteTests) createBadRequest(t *testing.T) {
	before := dbtest.Count(t, "")
	for _, body := range []string{`{"title":"no content"}`, `{"content":"no title"}`, `{"title":`, `[]`} {
		w := nt.do(http.MethodPost, "/api/notes/", body)
		assertError(t, w, http.StatusBadRequest, "Bad request")
	}
	if after := dbtest.Count(t, ""); after != before {
		t.Fatalf("Test createBadRequest: Should not store any note: %d before, %d after", before, after)
	}
}

func (nt *NoteTests) getRoundtrip(t *testing.T) {
	created := nt.create(t, `{"title":"my notes","content":"my notes text","category":"work"}`)

	got := nt.get(t, created.Id.String())
	if got.Id != created.Id {
		t.Fatalf("Test getRoundtrip: Should have received %s as id in the response: %v", created.Id, got)
	}
	if got.Title != "my notes" || got.Content != "my notes text" || got.Category != "work" || got.Published {
		t.Fatalf("Test getRoundtrip: Should have received the created fields in the response: %v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("Test getRoundtrip: Should have received timestamps in the response: %v", got)
	}
	if !nt.cache.Exists("notes." + created.Id.String()) {
		t.Fatalf("Test getRoundtrip: note %s not in cache", created.Id)
	}

	// second read is served by the cache
	again := nt.get(t, created.Id.String())
	if again.Title != got.Title || !again.UpdatedAt.Equal(got.UpdatedAt) {
		t.Fatalf("Test getRoundtrip: Should receive the same note from the cache: %v %v", got, again)
	}

	w := nt.do(http.MethodGet, "/api/notes/018f3a6e-7c1a-7b3e-9d2f-5c8e1a2b3c4d", "")
	assertError(t, w, http.StatusNotFound, "Resource not found")
}

func (nt *NoteTests) getBadID(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		body := ""
		if method == http.MethodPut || method == http.MethodPatch {
			body = "{}"
		}
		w := nt.do(method, "/api/notes/not-a-uuid", body)
		assertError(t, w, http.StatusBadRequest, "Bad request")
	}
}

func (nt *NoteTests) updatePartial(t *testing.T) {
	created := nt.create(t, `{"title":"todo","content":"buy milk","category":"home"}`)
	_ = nt.get(t, created.Id.String())

	w := nt.do(http.MethodPatch, "/api/notes/"+created.Id.String(), `{"content":"buy milk and eggs","published":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Test updatePartial: Should receive a status code of 200 for the response : %v %s", w.Code, w.Body)
	}
	var resp notes.NoteResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test updatePartial: Should be able to unmarshal the response : %v", err)
	}
	updated := resp.Data.Note
	if updated.Title != "todo" || updated.Category != "home" {
		t.Fatalf("Test updatePartial: Should keep omitted fields: %v", updated)
	}
	if updated.Content != "buy milk and eggs" || !updated.Published {
		t.Fatalf("Test updatePartial: Should apply supplied fields: %v", updated)
	}

	// the cached copy must not outlive the update
	got := nt.get(t, created.Id.String())
	if got.Content != "buy milk and eggs" || !got.Published {
		t.Fatalf("Test updatePartial: Should read the updated note back: %v", got)
	}

	w = nt.do(http.MethodPut, "/api/notes/018f3a6e-7c1a-7b3e-9d2f-5c8e1a2b3c4d", `{"title":"ghost"}`)
	assertError(t, w, http.StatusNotFound, "Resource not found")

	w = nt.do(http.MethodPut, "/api/notes/"+created.Id.String(), `{"title":`)
	assertError(t, w, http.StatusBadRequest, "Bad request")
}

func (nt *NoteTests) updateEmptyBody(t *testing.T) {
	created := nt.create(t, `{"title":"unchanged","content":"same","category":"misc"}`)

	w := nt.do(http.MethodPut, "/api/notes/"+created.Id.String(), `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Test updateEmptyBody: Should receive a status code of 200 for the response : %v %s", w.Code, w.Body)
	}
	var resp notes.NoteResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test updateEmptyBody: Should be able to unmarshal the response : %v", err)
	}
	updated := resp.Data.Note
	if updated.Title != created.Title || updated.Content != created.Content || updated.Category != created.Category ||
		updated.Published != created.Published || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("Test updateEmptyBody: Should keep every field: %v %v", created, updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("Test updateEmptyBody: Should not move updated_at backwards: %v %v", created.UpdatedAt, updated.UpdatedAt)
	}
}

func (nt *NoteTests) updateTitleConflict(t *testing.T) {
	first := nt.create(t, `{"title":"taken title","content":"first"}`)
	second := nt.create(t, `{"title":"free title","content":"second"}`)

	w := nt.do(http.MethodPatch, "/api/notes/"+second.Id.String(), `{"title":"taken title"}`)
	assertError(t, w, http.StatusInternalServerError, "Failed to action on database")

	if n := dbtest.Count(t, "taken title"); n != 1 {
		t.Fatalf("Test updateTitleConflict: Should have exactly one note titled \"taken title\": %d", n)
	}
	if got := nt.get(t, second.Id.String()); got.Title != "free title" {
		t.Fatalf("Test updateTitleConflict: Should keep the stored title: %v", got)
	}
	if got := nt.get(t, first.Id.String()); got.Content != "first" {
		t.Fatalf("Test updateTitleConflict: Should not touch the other note: %v", got)
	}
}

func (nt *NoteTests) deleteFlow(t *testing.T) {
	created := nt.create(t, `{"title":"to delete","content":"bye"}`)
	_ = nt.get(t, created.Id.String())

	before := dbtest.Count(t, "")
	w := nt.do(http.MethodDelete, "/api/notes/018f3a6e-7c1a-7b3e-9d2f-5c8e1a2b3c4d", "")
	assertError(t, w, http.StatusNotFound, "Resource not found")
	if after := dbtest.Count(t, ""); after != before {
		t.Fatalf("Test deleteFlow: Should keep the note count on a miss: %d before, %d after", before, after)
	}

	w = nt.do(http.MethodDelete, "/api/notes/"+created.Id.String(), "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test deleteFlow: Should receive a status code of 204 for the response : %v %s", w.Code, w.Body)
	}
	body, _ := io.ReadAll(w.Body)
	if len(body) != 0 {
		t.Fatalf("Test deleteFlow: Should receive an empty body: %s", body)
	}
	if after := dbtest.Count(t, ""); after != before-1 {
		t.Fatalf("Test deleteFlow: Should have one note less: %d before, %d after", before, after)
	}
	if nt.cache.Exists("notes." + created.Id.String()) {
		t.Fatalf("Test deleteFlow: note %s still in cache", created.Id)
	}

	w = nt.do(http.MethodGet, "/api/notes/"+created.Id.String(), "")
	assertError(t, w, http.StatusNotFound, "Resource not found")

	w = nt.do(http.MethodDelete, "/api/notes/"+created.Id.String(), "")
	assertError(t, w, http.StatusNotFound, "Resource not found")
}

func (nt *NoteTests) unknownRoute(t *testing.T) {
	w := nt.do(http.MethodGet, "/api/nothing", "")
	assertError(t, w, http.StatusNotFound, "Resource not found")
}

func TestNoteDatabaseDown(t *testing.T) {
	nt := newNoteTests(t)
	created := nt.create(t, `{"title":"before outage","content":"x"}`)
	cached := nt.create(t, `{"title":"cached before outage","content":"x"}`)
	// lookup served by the cache, only the write reaches the database
	_ = nt.get(t, cached.Id.String())

	_ = sys.R.Database.Close()

	w := nt.do(http.MethodGet, "/api/notes", "")
	assertError(t, w, http.StatusInternalServerError, "Failed to action on database")

	w = nt.do(http.MethodPost, "/api/notes/", `{"title":"during outage","content":"x"}`)
	assertError(t, w, http.StatusInternalServerError, "Failed to action on database")

	w = nt.do(http.MethodGet, "/api/notes/"+created.Id.String(), "")
	assertError(t, w, http.StatusInternalServerError, "Failed to action on database")

	w = nt.do(http.MethodPatch, "/api/notes/"+created.Id.String(), `{"content":"y"}`)
	assertError(t, w, http.StatusInternalServerError, "Failed to action on database")

	w = nt.do(http.MethodPatch, "/api/notes/"+cached.Id.String(), `{"content":"y"}`)
	assertError(t, w, http.StatusInternalServerError, "Failed to action on database")

	w = nt.do(http.MethodPut, "/api/notes/"+cached.Id.String(), `{"published":true}`)
	assertError(t, w, http.StatusInternalServerError, "Failed to action on database")

	w = nt.do(http.MethodDelete, "/api/notes/"+created.Id.String(), "")
	assertError(t, w, http.StatusInternalServerError, "Failed to action on database")
}
