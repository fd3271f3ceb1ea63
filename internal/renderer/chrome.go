package renderer

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 landscape in inches, zero margins. Layout geometry is owned by the
// template stylesheet, not the printer.
const (
	pdfPaperWidth  = 11.69
	pdfPaperHeight = 8.27
)

// ChromeRenderer prints certificate HTML through headless Chrome. A
// single exec allocator is shared; every RenderPDF call opens its own
// tab, so the renderer is safe for concurrent use by pipeline workers.
type ChromeRenderer struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewChromeRenderer() *ChromeRenderer {
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(),
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...)

	return &ChromeRenderer{allocCtx: allocCtx, allocCancel: cancel}
}

func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string, meta Meta) ([]byte, error) {
	tabCtx, cancel := chromedp.NewContext(r.allocCtx)
	defer cancel()

	if deadline, ok := ctx.Deadline(); ok {
		tabCtx, cancel = context.WithDeadline(tabCtx, deadline)
		defer cancel()
	}

	var pdfBytes []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithLandscape(true).
				WithPaperWidth(pdfPaperWidth).
				WithPaperHeight(pdfPaperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBytes = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome render failed for participant %s: %w", meta.ParticipantID, err)
	}

	return pdfBytes, nil
}

func (r *ChromeRenderer) Close() {
	r.allocCancel()
}
