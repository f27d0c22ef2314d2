package render

import (
	"bytes"
	"fmt"
	"html/template"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="ko">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Noto Sans KR", "Malgun Gothic", sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
    }
    .sheet {
      position: relative;
      background: #ffffff;
      max-width: 800px;
      margin: 0 auto;
      padding: 48px;
    }
    h1 {
      text-align: center;
      letter-spacing: 12px;
      margin: 0 0 32px;
    }
    .parties { display: flex; gap: 24px; margin-bottom: 24px; }
    .party { flex: 1; }
    .party h2 { font-size: 14px; margin: 0 0 8px; }
    table { width: 100%; border-collapse: collapse; }
    th, td { border: 1px solid #c9ced6; padding: 6px 8px; font-size: 13px; }
    th { background: #f0f2f5; font-weight: 600; }
    .fields th { width: 30%; text-align: left; }
    .num { text-align: right; }
    .header { margin-bottom: 24px; }
    .totals { margin-top: 16px; width: 50%; margin-left: auto; }
    .stamp {
      position: absolute;
      top: 96px;
      right: 48px;
      max-width: 72px;
      max-height: 72px;
      opacity: 0.85;
    }
    @media print {
      body { background: #ffffff; padding: 0; }
      .sheet { box-shadow: none; }
    }
  </style>
</head>
<body>
  <div class="sheet">
    <h1>{{.Title}}</h1>
    {{with .Stamp}}<img class="stamp" src="{{stampURL .}}" alt="stamp">{{end}}

    <div class="parties">
      <div class="party">
        <h2>{{.Labels.Supplier}}</h2>
        <table class="fields">
          {{range .Supplier}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
          {{end}}
        </table>
      </div>
      <div class="party">
        <h2>{{.Labels.Recipient}}</h2>
        <table class="fields">
          {{range .Recipient}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
          {{end}}
        </table>
      </div>
    </div>

    <table class="fields header">
      <tr><th>{{.Labels.Issued}}</th><td>{{.Issued}}</td></tr>
      {{range .Header}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
      {{end}}
    </table>

    <table>
      <thead>
        <tr>
          <th>{{.Labels.Item}}</th>
          <th>{{.Labels.Quantity}}</th>
          <th>{{.Labels.UnitPrice}}</th>
          <th>{{.Labels.SupplyPrice}}</th>
          <th>{{.Labels.Tax}}</th>
          <th>{{.Labels.Note}}</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td>{{.Name}}</td>
          <td class="num">{{.Quantity}}</td>
          <td class="num">{{.UnitPrice}}</td>
          <td class="num">{{.SupplyPrice}}</td>
          <td class="num">{{.Tax}}</td>
          <td>{{.Note}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <table class="totals">
      <tr><th>{{.Labels.TotalSupply}}</th><td class="num">{{.TotalSupply}}</td></tr>
      <tr><th>{{.Labels.TotalTax}}</th><td class="num">{{.TotalTax}}</td></tr>
      <tr><th>{{.Labels.TotalAmount}}</th><td class="num"><strong>{{.TotalAmount}}</strong></td></tr>
    </table>
  </div>
</body>
</html>
`

// HTMLRenderer renders the printable preview.
type HTMLRenderer struct {
	tpl *template.Template
}

// NewHTMLRenderer parses the document template.
func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"stampURL": stampURL,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("document").Funcs(funcs).Parse(documentHTMLTemplate)),
	}
}

// Render executes the template for v.
func (r *HTMLRenderer) Render(v *View) (*Artifact, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}
	return &Artifact{
		Filename:    v.ExportName + ".html",
		ContentType: "text/html; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}

// stampURL marks a decoded stamp data URL as safe for an img src. Only values
// that went through decodeStamp reach here.
func stampURL(s *Stamp) template.URL {
	return template.URL(s.DataURL)
}
