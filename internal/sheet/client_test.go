package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func workbookFixture(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_ = f.SetCellValue("Sheet1", "A1", "Name")
	_ = f.SetCellValue("Sheet1", "B1", "Price")
	_ = f.SetCellValue("Sheet1", "A2", "Bibimbap")
	_ = f.SetCellValue("Sheet1", "B2", 150)

	if _, err := f.NewSheet("Settings"); err != nil {
		t.Fatal(err)
	}
	_ = f.SetCellValue("Settings", "A1", "Category")
	_ = f.SetCellValue("Settings", "B1", "Name")
	_ = f.SetCellValue("Settings", "A2", "Setting")
	_ = f.SetCellValue("Settings", "B2", "Line")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestSheetsDecodesWorkbook(t *testing.T) {
	body := workbookFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", xlsxContentType)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	sheets, err := NewClient(srv.URL).Sheets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(sheets))
	}
	if sheets[0].Name != "Sheet1" || sheets[1].Name != "Settings" {
		t.Fatalf("sheet order: %q, %q", sheets[0].Name, sheets[1].Name)
	}
	if got := sheets[0].Rows[1][0]; got != "Bibimbap" {
		t.Fatalf("cell A2: %q", got)
	}
	if got := sheets[0].Rows[1][1]; got != "150" {
		t.Fatalf("cell B2: %q", got)
	}
}

func TestSheetsRejectsHTMLResponse(t *testing.T) {
	// An unpublished sheet redirects to a sign-in page; the client must
	// report that as a failure, not try to decode HTML.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>Sign in</body></html>"))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Sheets(context.Background()); err == nil {
		t.Fatal("expected an error for an HTML payload")
	}
}

func TestSheetsRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Sheets(context.Background()); err == nil {
		t.Fatal("expected an error for a non-200 status")
	}
}

func TestSheetsUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	if _, err := NewClient(srv.URL).Sheets(context.Background()); err == nil {
		t.Fatal("expected an error for an unreachable host")
	}
}
