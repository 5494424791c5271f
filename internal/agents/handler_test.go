package agents_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nayyaratul/chatbot-creation-flow/internal/agents"
	"github.com/nayyaratul/chatbot-creation-flow/internal/auth"
	"github.com/nayyaratul/chatbot-creation-flow/internal/routes"
	"github.com/nayyaratul/chatbot-creation-flow/internal/storage"
)

func testHandler(t *testing.T) (http.Handler, storage.System) {
	t.Helper()

	sys, store := testSystem(t)
	handler := agents.NewHandler(sys, testLogger())

	r := routes.New(testLogger())
	r.RegisterGroup(handler.Routes())
	return r.Build(), store
}

func request(method, target string, body string, u *auth.User) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if u != nil {
		req = req.WithContext(auth.WithUser(context.Background(), u))
	}
	return req
}

func TestHandlerList_FiltersByVisibility(t *testing.T) {
	mux, store := testHandler(t)

	seedAgents(t, store, []agents.Agent{
		{ID: "mine", OwnerID: "editor-1", UpdatedAt: "2025-03-01T00:00:00Z"},
		{ID: "shared", OwnerID: "someone", Owners: []string{"editor-1"}, UpdatedAt: "2025-02-01T00:00:00Z"},
		{ID: "theirs", OwnerID: "someone", UpdatedAt: "2025-01-01T00:00:00Z"},
	})

	tests := []struct {
		name string
		user *auth.User
		want []string
	}{
		{"admin sees all", user("admin-1", auth.RoleAdmin), []string{"mine", "shared", "theirs"}},
		{"editor sees owned and co-owned", user("editor-1", auth.RoleEditor), []string{"mine", "shared"}},
		{"viewer sees owned only", user("editor-1", auth.RoleViewer), []string{"mine", "shared"}},
		{"stranger sees nothing", user("nobody", auth.RoleViewer), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, request("GET", "/api/agents", "", tt.user))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var records []agents.Agent
			if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
				t.Fatalf("decode response: %v", err)
			}

			if len(records) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(records), len(tt.want))
			}
			for i, id := range tt.want {
				if records[i].ID != id {
					t.Errorf("records[%d].ID = %q, want %q", i, records[i].ID, id)
				}
			}
		})
	}
}

func TestHandlerList_Unauthenticated(t *testing.T) {
	mux, _ := testHandler(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, request("GET", "/api/agents", "", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandlerFind(t *testing.T) {
	mux, store := testHandler(t)

	seedAgents(t, store, []agents.Agent{
		{ID: "agent-1", OwnerID: "owner-1"},
	})

	tests := []struct {
		name   string
		target string
		user   *auth.User
		status int
	}{
		{"owner reads own", "/api/agents/agent-1", user("owner-1", auth.RoleViewer), http.StatusOK},
		{"admin reads any", "/api/agents/agent-1", user("admin-1", auth.RoleAdmin), http.StatusOK},
		{"stranger forbidden", "/api/agents/agent-1", user("nobody", auth.RoleEditor), http.StatusForbidden},
		{"missing record", "/api/agents/nope", user("admin-1", auth.RoleAdmin), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, request("GET", tt.target, "", tt.user))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestHandlerCreate(t *testing.T) {
	mux, _ := testHandler(t)

	body := `{
		"name": "New Agent",
		"description": "created in a test",
		"ownerId": "spoofed-owner",
		"settings": {"tone": "professional", "temperature": 0.4, "guardrails": {}},
		"conversationConfig": {"maxLength": 100, "chatMode": "text-to-text"}
	}`

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, request("POST", "/api/agents", body, user("editor-1", auth.RoleEditor)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created agents.Agent
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if created.OwnerID != "editor-1" {
		t.Errorf("OwnerID = %q, want the authenticated caller editor-1", created.OwnerID)
	}
	if created.ID == "" || created.CreatedAt == "" {
		t.Error("created record missing id or createdAt")
	}
}

func TestHandlerCreate_ViewerForbidden(t *testing.T) {
	mux, _ := testHandler(t)

	body := `{"name": "x", "settings": {}, "conversationConfig": {}}`

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, request("POST", "/api/agents", body, user("viewer-1", auth.RoleViewer)))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestHandlerCreate_Invalid(t *testing.T) {
	mux, _ := testHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"missing name", `{"settings": {}, "conversationConfig": {}}`},
		{"missing settings", `{"name": "x", "conversationConfig": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, request("POST", "/api/agents", tt.body, user("admin-1", auth.RoleAdmin)))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandlerUpdate(t *testing.T) {
	mux, store := testHandler(t)

	seedAgents(t, store, []agents.Agent{
		{ID: "agent-1", Name: "Before", OwnerID: "owner-1"},
	})

	tests := []struct {
		name   string
		user   *auth.User
		status int
	}{
		{"owner editor", user("owner-1", auth.RoleEditor), http.StatusOK},
		{"admin", user("admin-1", auth.RoleAdmin), http.StatusOK},
		{"non-owner editor", user("nobody", auth.RoleEditor), http.StatusForbidden},
		{"owner viewer", user("owner-1", auth.RoleViewer), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, request("PUT", "/api/agents/agent-1", `{"name": "After"}`, tt.user))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestHandlerUpdate_NotFound(t *testing.T) {
	mux, _ := testHandler(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, request("PUT", "/api/agents/missing", `{"name": "x"}`, user("admin-1", auth.RoleAdmin)))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerDelete(t *testing.T) {
	tests := []struct {
		name   string
		user   *auth.User
		status int
	}{
		{"admin", user("admin-1", auth.RoleAdmin), http.StatusOK},
		{"owner editor", user("owner-1", auth.RoleEditor), http.StatusForbidden},
		{"viewer", user("viewer-1", auth.RoleViewer), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, store := testHandler(t)
			seedAgents(t, store, []agents.Agent{
				{ID: "agent-1", OwnerID: "owner-1"},
			})

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, request("DELETE", "/api/agents/agent-1", "", tt.user))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}

			if tt.status == http.StatusOK {
				var resp map[string]string
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp["message"] != "Agent deleted successfully" {
					t.Errorf("message = %q, want confirmation", resp["message"])
				}
			}
		})
	}
}

func TestHandlerDelete_NotFound(t *testing.T) {
	mux, _ := testHandler(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, request("DELETE", "/api/agents/missing", "", user("admin-1", auth.RoleAdmin)))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
