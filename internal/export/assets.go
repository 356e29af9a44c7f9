package export

// pageTemplate is the shell for exported chapter pages. Exported pages
// are static: navigation is plain links and code is pre-highlighted.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} - {{.BookTitle}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <nav class="sidebar">
    <h2>{{.BookTitle}}</h2>
    <ul>
    {{range .Nav}}
      <li{{if .Active}} class="active"{{end}}><a href="{{.Path}}">{{.Title}}</a></li>
    {{end}}
    </ul>
  </nav>
  <main class="content">
    <article>{{.Content}}</article>
    <div class="pager">
      {{if .Prev}}<a href="{{.Prev}}">&larr; Previous</a>{{else}}<span></span>{{end}}
      {{if .Next}}<a href="{{.Next}}">Next &rarr;</a>{{end}}
    </div>
  </main>
</body>
</html>
`

const siteCSS = `* { box-sizing: border-box; }
body {
  margin: 0;
  display: flex;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  color: #1f2328;
}
.sidebar {
  width: 260px;
  min-height: 100vh;
  border-right: 1px solid #d0d7de;
  padding: 16px;
}
.sidebar h2 { font-size: 1.05rem; margin: 0 0 12px; }
.sidebar ul { list-style: none; padding: 0; margin: 0; }
.sidebar li { padding: 4px 8px; border-radius: 6px; }
.sidebar li.active { background: #f6f8fa; }
.sidebar a { color: #1f2328; text-decoration: none; }
.sidebar li.active a { color: #0969da; font-weight: 600; }
.content { flex: 1; padding: 32px 48px; }
article { max-width: 760px; }
article pre {
  padding: 12px;
  border: 1px solid #d0d7de;
  border-radius: 6px;
  overflow-x: auto;
}
article table { border-collapse: collapse; }
article th, article td { border: 1px solid #d0d7de; padding: 6px 12px; }
.pager {
  display: flex;
  justify-content: space-between;
  max-width: 760px;
  margin-top: 32px;
}
.pager a { color: #0969da; text-decoration: none; }
`
