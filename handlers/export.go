package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"dealcalc/services"
)

// buildQuoteData decodes the posted snapshot and assembles the quote record.
// On failure it writes the error response itself and returns handled=true.
func buildQuoteData(app *pocketbase.PocketBase, e *core.RequestEvent) (services.QuoteData, bool) {
	in, err := decodeQuoteRequest(e)
	if err != nil {
		jsonError(e, http.StatusBadRequest, err.Error())
		return services.QuoteData{}, true
	}

	cfg, err := loadPricingConfig(app)
	if err != nil {
		log.Printf("export: could not load pricing config: %v", err)
		jsonError(e, http.StatusInternalServerError, "Pricing configuration unavailable")
		return services.QuoteData{}, true
	}

	data, err := services.BuildQuoteData(in, cfg)
	if err != nil {
		log.Printf("export: %v", err)
		jsonError(e, lookupErrorStatus(err), err.Error())
		return services.QuoteData{}, true
	}

	return data, false
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// quoteFilename builds a download name like "Quote_Acme-Corp_2026-09-01.ext".
func quoteFilename(prefix, customerName, ext string) string {
	name := customerName
	if name == "" {
		name = "Customer"
	}
	return fmt.Sprintf("%s_%s_%s.%s", prefix, sanitizeFilename(name), time.Now().Format("2006-01-02"), ext)
}

// HandleQuotePDF returns a handler that generates and downloads the quote PDF.
func HandleQuotePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, handled := buildQuoteData(app, e)
		if handled {
			return nil
		}

		preparedOn := time.Now().Format("January 2, 2006")
		pdfBytes, err := services.GenerateQuotePDF(data, preparedOn)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := quoteFilename("Quote", data.CustomerName, "pdf")
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleUsagePDF returns a handler that generates and downloads the
// estimated usage report PDF.
func HandleUsagePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, handled := buildQuoteData(app, e)
		if handled {
			return nil
		}

		pdfBytes, err := services.GenerateUsagePDF(data)
		if err != nil {
			log.Printf("export_usage: failed to generate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := quoteFilename("Estimated-Usage", data.CustomerName, "pdf")
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteCSV returns a handler that generates and downloads the CSV export.
func HandleQuoteCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, handled := buildQuoteData(app, e)
		if handled {
			return nil
		}

		csvBytes, err := services.GenerateCSV(data)
		if err != nil {
			log.Printf("export_csv: failed to generate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate CSV file")
		}

		filename := quoteFilename("Quote", data.CustomerName, "csv")
		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}

// HandleQuoteExcel returns a handler that generates and downloads the Excel workbook.
func HandleQuoteExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, handled := buildQuoteData(app, e)
		if handled {
			return nil
		}

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := quoteFilename("Quote", data.CustomerName, "xlsx")
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
