package exporter

const reportPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.ReportName}} - {{.Date}}</title>
<style>
  body { font-family: "Segoe UI", Arial, sans-serif; margin: 24px; color: #1f2430; }
  h1 { font-size: 20px; margin-bottom: 4px; }
  .meta { color: #555; margin-bottom: 16px; }
  .meta span { margin-right: 18px; }
  .tally { margin-bottom: 20px; }
  .tally .badge { margin-right: 10px; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #c9ced6; padding: 6px 8px; vertical-align: top; font-size: 13px; }
  th { background: #eef1f5; text-align: left; }
  td.stt { width: 36px; text-align: center; }
  .badge { display: inline-block; padding: 2px 8px; border-radius: 10px; font-size: 12px; font-weight: 600; }
  .status-checked { background: #d9f2dd; color: #1d7a2e; }
  .status-pending { background: #f0f0f0; color: #666; }
  .status-finding { background: #fbe0e0; color: #b02a2a; }
  .status-default { background: #e8ecf4; color: #445; }
  .photos img { height: 70px; margin: 2px 4px 2px 0; border: 1px solid #c9ced6; border-radius: 3px; }
  .note { white-space: pre-wrap; }
</style>
</head>
<body>
<h1>{{.ReportName}}</h1>
<div class="meta">
  <span><strong>Date:</strong> {{.Date}}</span>
  <span><strong>Inspector:</strong> {{.Inspector}}</span>
  {{if .Station}}<span><strong>Station:</strong> {{.Station}}</span>{{end}}
</div>

{{if .Tally}}
<div class="tally">
  {{range .Tally}}<span class="badge {{statusClass .Status}}">{{.Status}}: {{.Count}}</span>{{end}}
</div>
{{end}}

<table>
  <thead>
    <tr>
      <th>STT</th>
      <th>TITLE</th>
      <th>Description</th>
      <th>Status</th>
      <th>Note</th>
      <th>Corrective action</th>
      <th>Target</th>
      <th>Photos</th>
    </tr>
  </thead>
  <tbody>
    {{range .Items}}
    <tr>
      <td class="stt">{{.STT}}</td>
      <td>{{.Title}}</td>
      <td class="note">{{.Descr}}</td>
      <td>{{if .Status}}<span class="badge {{statusClass .Status}}">{{.Status}}</span>{{end}}</td>
      <td class="note">{{.Note}}</td>
      <td class="note">{{.Corrective}}</td>
      <td>{{.Target}}</td>
      <td class="photos">{{range .Images}}<img src="{{.DataURI}}" alt="{{.Name}}" title="{{.Name}}">{{end}}</td>
    </tr>
    {{end}}
  </tbody>
</table>
</body>
</html>
`
