// Package printing renders business documents to PDF.
//
// Documents are html/template pages embedded in the binary. TemplateEngine
// turns a page model (ChallanPage, InvoicePage, QuotationPage, SummaryPage)
// into HTML and a PDFRenderer prints that HTML on A4 paper:
//
//	engine, err := NewTemplateEngine(letterhead)
//	if err != nil {
//	    return err
//	}
//	html, err := engine.Render(ctx, printing.DocKindChallan, page)
//	if err != nil {
//	    return err
//	}
//	result, err := renderer.Render(ctx, &RenderRequest{
//	    HTML:      html,
//	    PaperSize: printing.PaperSizeA4,
//	    Margins:   printing.DefaultMargins(),
//	})
package printing
