package sheet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Nhongkham198/SGdelivery/internal/logger"
)

// Sheet is one worksheet as a rectangular matrix of raw cell values.
// Rows may be ragged; consumers must tolerate short rows.
type Sheet struct {
	Name string
	Rows [][]string
}

// Client fetches the published workbook export and decodes it into sheets.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Sheets downloads and decodes the workbook. An HTML response means the
// sheet is not published (or requires sign-in) and is reported as an error;
// the caller degrades to an empty menu rather than crashing.
func (c *Client) Sheets(ctx context.Context) ([]Sheet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("workbook request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("workbook fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("workbook fetch: unexpected status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") {
		return nil, fmt.Errorf("workbook fetch: got %q instead of a spreadsheet, check that the sheet is published", contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("workbook read: %w", err)
	}

	logger.L().Debug("workbook fetched",
		zap.String("content_type", contentType),
		zap.Int("bytes", len(body)),
	)

	wb, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("workbook decode: %w", err)
	}
	defer wb.Close()

	var sheets []Sheet
	for _, name := range wb.GetSheetList() {
		rows, err := wb.GetRows(name)
		if err != nil {
			logger.L().Warn("skipping unreadable sheet",
				zap.String("sheet", name),
				zap.Error(err),
			)
			continue
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}

	return sheets, nil
}
