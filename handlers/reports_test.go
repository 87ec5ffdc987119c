package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"marnthara/services"
	"marnthara/testhelpers"
)

var testShop = services.ShopInfo{Name: "Curtain Shop", VATRate: 0.07}

func TestHandleSummaryText(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestOrder(t, app, testhelpers.SampleOrder())

	rec := serve(t, app, HandleSummaryText(NewOrderStores(app, nil)), http.MethodGet, record.Id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "ห้องนั่งเล่น", "6,000", "6,750")
}

func TestHandleSummaryHTML(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	o := testhelpers.SampleOrder()
	o.CustomerName = `<b>Kim</b>`
	record := testhelpers.CreateTestOrder(t, app, o)

	rec := serve(t, app, HandleSummaryHTML(NewOrderStores(app, nil)), http.MethodGet, record.Id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "<h3>ห้องนั่งเล่น</h3>", "ผ้าม่าน", "6,750", "&lt;b&gt;Kim")
	if strings.Contains(body, "<b>Kim</b>") {
		t.Error("customer name was not escaped")
	}
}

func TestHandleOverview(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestOrder(t, app, testhelpers.SampleOrder())

	rec := serve(t, app, HandleOverview(NewOrderStores(app, nil)), http.MethodGet, record.Id, "")
	ov := decodeBody[services.Overview](t, rec)
	if len(ov.Categories) != 2 {
		t.Fatalf("categories = %+v, want 2", ov.Categories)
	}
	if ov.Categories[0].Total != 6000 || ov.Categories[1].Total != 750 {
		t.Errorf("category totals = %+v", ov.Categories)
	}
	if ov.FabricYardage <= 0 {
		t.Error("expected fabric yardage for the curtain set")
	}
}

func TestHandleExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestOrder(t, app, testhelpers.SampleOrder())

	rec := serve(t, app, HandleExportPDF(app, NewOrderStores(app, nil), testShop, services.PDFOptions{}),
		http.MethodGet, record.Id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, record.GetString("quote_number")+".pdf") {
		t.Errorf("disposition = %q, want quote number filename", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}
}

func TestHandleExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestOrder(t, app, testhelpers.SampleOrder())

	rec := serve(t, app, HandleExportExcel(app, NewOrderStores(app, nil), testShop), http.MethodGet, record.Id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("expected Excel content type, got %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty body")
	}
}

func TestHandleExport_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := serve(t, app, HandleExportExcel(app, NewOrderStores(app, nil), testShop), http.MethodGet, "nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
