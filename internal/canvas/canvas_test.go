package canvas

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"canvasnotes/internal/cnerrors"
	"canvasnotes/internal/models"
)

func TestFetchActiveCoursesRequestShape(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "secret-token")
	courses, err := client.FetchActiveCourses(context.Background())
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	if gotPath != "/api/v1/courses" {
		t.Errorf("Expected path /api/v1/courses, got %s", gotPath)
	}
	if gotQuery != "enrollment_state=active&per_page=100" {
		t.Errorf("Unexpected query string: %s", gotQuery)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Unexpected Authorization header: %s", gotAuth)
	}
	if courses == nil || len(courses) != 0 {
		t.Errorf("Expected an empty course list, got %v", courses)
	}
}

func TestFetchActiveCoursesMapsRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 101, "name": "Intro to Go (Fall 2024)", "course_code": "CS 101", "workflow_state": "available", "start_at": "2024-09-01T00:00:00Z"},
			{"id": 102, "term": {"name": "Spring Term"}, "name": "Networks", "course_code": "CS 168"},
			{"id": 103}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	courses, err := client.FetchActiveCourses(context.Background())
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("Expected 3 courses, got %d", len(courses))
	}

	start := "2024-09-01T00:00:00Z"
	want := []models.Course{
		{ID: 101, Name: "Intro to Go (Fall 2024)", CourseCode: "CS 101", WorkflowState: "available", Term: "Fall 2024", StartAt: &start},
		{ID: 102, Name: "Networks", CourseCode: "CS 168", WorkflowState: "available", Term: "Spring Term"},
		{ID: 103, Name: "Unknown Course", CourseCode: "", WorkflowState: "available", Term: "Current Term"},
	}
	for i := range want {
		got, expected := courses[i], want[i]
		if got.StartAt != nil && expected.StartAt != nil {
			if *got.StartAt != *expected.StartAt {
				t.Errorf("Course %d: start_at %q, want %q", got.ID, *got.StartAt, *expected.StartAt)
			}
			got.StartAt, expected.StartAt = nil, nil
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("Course %d mapped to %+v, want %+v", expected.ID, got, expected)
		}
	}
}

func TestFetchActiveCoursesClassifiesStatuses(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, cnerrors.InvalidTokenError},
		{http.StatusForbidden, cnerrors.InsufficientPermissionError},
		{http.StatusNotFound, cnerrors.WrongBaseURLError},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		client := NewClient(srv.URL, "tok")
		_, err := client.FetchActiveCourses(context.Background())
		if !errors.Is(err, tc.want) {
			t.Errorf("Status %d: expected %v, got %v", tc.status, tc.want, err)
		}
		srv.Close()
	}
}

func TestFetchActiveCoursesGenericErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	_, err := client.FetchActiveCourses(context.Background())
	if err == nil {
		t.Fatal("Expected an error for HTTP 502")
	}
	for _, sentinel := range []error{cnerrors.InvalidTokenError, cnerrors.InsufficientPermissionError, cnerrors.WrongBaseURLError} {
		if errors.Is(err, sentinel) {
			t.Errorf("HTTP 502 should not classify as %v", sentinel)
		}
	}

	// Transport-level failure
	down := NewClient("http://127.0.0.1:1", "tok")
	if _, err := down.FetchActiveCourses(context.Background()); err == nil {
		t.Error("Expected an error for an unreachable host")
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://canvas.example.edu///", "tok")
	if client.BaseURL() != "https://canvas.example.edu" {
		t.Errorf("Expected trailing slashes trimmed, got %s", client.BaseURL())
	}
}
