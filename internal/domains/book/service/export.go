package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"bookstore-web/internal/domains/book/model"
)

const exportSheet = "Books"

var exportHeaders = []string{
	"ID", "ISBN", "Title", "Sort Title", "Author", "Year", "Pages",
	"Price", "Rating", "Rating Count", "Image",
}

// ExportCatalog writes the same listing the catalog page shows, one row per book.
func (s *BookService) ExportCatalog(ctx context.Context, q model.CatalogQuery) ([]byte, error) {
	catalog, err := s.ListBooks(ctx, q)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(exportSheet, 1, 1, bold)
	}

	for i, b := range catalog.Books {
		price, _ := b.Price.Float64()
		var rating interface{}
		if b.Rating.Valid {
			rating, _ = b.Rating.Decimal.Float64()
		}

		row := []interface{}{
			b.ID, b.ISBN, b.Title, b.SortTitle, b.AuthorName, b.Year, b.Pages,
			price, rating, b.RatingCount, b.Picture(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(exportSheet, "C", "D", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
