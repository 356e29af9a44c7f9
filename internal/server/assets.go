package server

import (
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// indexData is the data passed to the shell template.
type indexData struct {
	Title      string
	DebounceMS int
	Watch      bool
}

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// registerAssets mounts the single-page reader UI.
func (s *Server) registerAssets(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := indexData{
			Title:      s.rd.Title(),
			DebounceMS: s.cfg.DebounceMS,
			Watch:      s.hub != nil,
		}
		if err := indexTemplate.Execute(w, data); err != nil {
			log.Printf("server: rendering index: %v", err)
		}
	})
	r.Get("/style.css", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(cssContent))
	})
	r.Get("/app.js", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Write([]byte(jsContent))
	})
}

// indexHTML is the shell page. All content is mounted by app.js.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/style.css">
  <script>window.DOCREAD = {debounceMs:{{.DebounceMS}}, watch:{{.Watch}}};</script>
</head>
<body>
  <nav class="sidebar">
    <div class="sidebar-header">
      <h2 class="book-title">{{.Title}}</h2>
      <input type="text" id="search-input" placeholder="Search..." autocomplete="off">
      <div class="progress"><div class="progress-bar" id="progress-bar"></div></div>
      <span class="progress-label" id="progress-label"></span>
    </div>
    <ul class="chapter-list" id="chapter-list"></ul>
  </nav>
  <main class="content" id="content">
    <div class="search-results hidden" id="search-results"></div>
    <div id="chapters"></div>
    <div class="pager">
      <button id="prev-btn">&larr; Previous</button>
      <button id="next-btn">Next &rarr;</button>
    </div>
  </main>
  <script src="/app.js"></script>
</body>
</html>`

// cssContent styles the reader shell; rendered chapter markup lives in
// .chapter-body (see internal/render).
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #656d76;
  --border: #d0d7de;
  --accent: #0969da;
  --done: #1a7f37;
  --code-bg: #f6f8fa;
  --error-bg: #ffebe9;
  --error-border: #ff8182;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  display: flex;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  color: var(--fg);
  background: var(--bg);
}
.sidebar {
  width: 280px;
  height: 100vh;
  overflow-y: auto;
  border-right: 1px solid var(--border);
  padding: 16px;
  position: sticky;
  top: 0;
}
.book-title { margin: 0 0 12px; font-size: 1.1rem; }
#search-input {
  width: 100%;
  padding: 6px 8px;
  border: 1px solid var(--border);
  border-radius: 6px;
}
.progress {
  height: 6px;
  background: var(--code-bg);
  border-radius: 3px;
  margin-top: 10px;
  overflow: hidden;
}
.progress-bar { height: 100%; width: 0; background: var(--done); transition: width .2s; }
.progress-label { font-size: .75rem; color: var(--muted); }
.chapter-list { list-style: none; padding: 0; margin: 16px 0 0; }
.chapter-list li {
  display: flex;
  align-items: center;
  gap: 8px;
  padding: 6px 8px;
  border-radius: 6px;
}
.chapter-list li.active { background: var(--code-bg); }
.chapter-list a { color: var(--fg); text-decoration: none; flex: 1; }
.chapter-list li.active a { color: var(--accent); font-weight: 600; }
.chapter-list li.completed a { color: var(--done); }
.chapter-list li.completed a::after { content: " \2713"; }
.content { flex: 1; height: 100vh; overflow-y: auto; padding: 32px 48px; }
.chapter-pane { display: none; max-width: 760px; }
.chapter-pane.active { display: block; }
.loading { color: var(--muted); font-style: italic; }
.load-error {
  border: 1px solid var(--error-border);
  background: var(--error-bg);
  border-radius: 6px;
  padding: 12px 16px;
}
.code-block {
  border: 1px solid var(--border);
  border-radius: 6px;
  margin: 16px 0;
  overflow: hidden;
}
.code-block-header {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 4px 12px;
  background: var(--code-bg);
  border-bottom: 1px solid var(--border);
  font-size: .8rem;
}
.code-lang { color: var(--muted); }
.copy-btn {
  border: 1px solid var(--border);
  background: var(--bg);
  border-radius: 4px;
  padding: 2px 8px;
  cursor: pointer;
  font-size: .75rem;
}
.code-block pre { margin: 0; padding: 12px; overflow-x: auto; background: var(--code-bg); }
.search-results {
  border: 1px solid var(--border);
  border-radius: 6px;
  margin-bottom: 24px;
  max-width: 760px;
}
.search-results.hidden { display: none; }
.search-result { padding: 10px 14px; border-bottom: 1px solid var(--border); cursor: pointer; }
.search-result:last-child { border-bottom: none; }
.search-result h4 { margin: 0 0 4px; color: var(--accent); }
.search-result p { margin: 0; font-size: .85rem; color: var(--muted); }
.pager { display: flex; justify-content: space-between; max-width: 760px; margin-top: 32px; }
.pager button {
  border: 1px solid var(--border);
  background: var(--bg);
  border-radius: 6px;
  padding: 8px 14px;
  cursor: pointer;
}
.pager button:disabled { opacity: .4; cursor: default; }
`

// jsContent is the presentation glue: it keeps one persistent pane per
// chapter and only toggles visibility classes, never removes them.
const jsContent = `(function () {
  const state = { current: "", chapters: [] };
  const debounceMs = (window.DOCREAD && window.DOCREAD.debounceMs) || 300;

  const chaptersEl = document.getElementById("chapters");
  const listEl = document.getElementById("chapter-list");
  const contentEl = document.getElementById("content");
  const resultsEl = document.getElementById("search-results");
  const searchEl = document.getElementById("search-input");

  async function api(path, body) {
    const opts = body
      ? { method: "POST", headers: { "Content-Type": "application/json" }, body: JSON.stringify(body) }
      : {};
    const resp = await fetch(path, opts);
    return resp.json();
  }

  function pane(id) {
    let el = document.getElementById("pane-" + id);
    if (!el) {
      el = document.createElement("div");
      el.id = "pane-" + id;
      el.className = "chapter-pane";
      chaptersEl.appendChild(el);
    }
    return el;
  }

  function activate(id) {
    // Deactivate every pane before activating the target: exactly one
    // chapter is visible at a time.
    document.querySelectorAll(".chapter-pane").forEach(function (el) {
      el.classList.remove("active");
    });
    pane(id).classList.add("active");

    listEl.querySelectorAll("li").forEach(function (li) {
      li.classList.toggle("active", li.dataset.chapter === id);
    });
    state.current = id;
    updatePager();
  }

  function scrollToSection(sectionId) {
    // Deferred so the freshly displayed content is in the DOM.
    setTimeout(function () {
      const el = document.getElementById(sectionId);
      if (el) el.scrollIntoView({ behavior: "smooth" });
    }, 50);
  }

  function show(view) {
    if (!view.chapter) return;
    if (view.scroll_only) {
      if (view.section) scrollToSection(view.section);
      return;
    }
    const el = pane(view.chapter);
    if (view.error) {
      el.innerHTML = '<div class="load-error"><strong>Failed to load chapter.</strong><p></p></div>';
      el.querySelector("p").textContent = view.error;
    } else if (view.loaded) {
      el.innerHTML = view.html;
    }
    activate(view.chapter);
    if (view.section) {
      scrollToSection(view.section);
    } else {
      contentEl.scrollTop = 0;
    }
  }

  async function navigate(id, section) {
    if (!id) return;
    if (id !== state.current) pane(id).innerHTML = '<p class="loading">Loading…</p>';
    show(await api("/api/navigate", { chapter: id, section: section || "" }));
  }

  function updatePager() {
    const idx = state.chapters.findIndex(function (c) { return c.id === state.current; });
    document.getElementById("prev-btn").disabled = idx <= 0;
    document.getElementById("next-btn").disabled = idx < 0 || idx >= state.chapters.length - 1;
  }

  function renderList(book) {
    listEl.innerHTML = "";
    book.chapters.forEach(function (ch) {
      const li = document.createElement("li");
      li.dataset.chapter = ch.id;
      if (ch.completed) li.classList.add("completed");

      const box = document.createElement("input");
      box.type = "checkbox";
      box.checked = ch.completed;
      box.addEventListener("change", async function () {
        const resp = await api("/api/complete", { chapter: ch.id, completed: box.checked });
        li.classList.toggle("completed", box.checked);
        setProgress(resp.percent);
      });

      const a = document.createElement("a");
      a.href = "#" + ch.id;
      a.textContent = ch.title;
      a.addEventListener("click", function (ev) {
        ev.preventDefault();
        navigate(ch.id);
      });

      li.appendChild(box);
      li.appendChild(a);
      listEl.appendChild(li);
    });
  }

  function setProgress(percent) {
    document.getElementById("progress-bar").style.width = percent + "%";
    document.getElementById("progress-label").textContent = percent + "% read";
  }

  // Search: debounced so rapid keystrokes collapse into one request.
  let searchTimer = null;
  searchEl.addEventListener("input", function () {
    clearTimeout(searchTimer);
    searchTimer = setTimeout(runSearch, debounceMs);
  });

  async function runSearch() {
    const q = searchEl.value;
    if (!q.trim()) {
      resultsEl.classList.add("hidden");
      resultsEl.innerHTML = "";
      return;
    }
    const resp = await api("/api/search?q=" + encodeURIComponent(q));
    resultsEl.innerHTML = "";
    resp.results.forEach(function (r) {
      const div = document.createElement("div");
      div.className = "search-result";
      const h = document.createElement("h4");
      h.textContent = r.title;
      const p = document.createElement("p");
      p.textContent = r.snippet;
      div.appendChild(h);
      div.appendChild(p);
      div.addEventListener("click", function () {
        resultsEl.classList.add("hidden");
        searchEl.value = "";
        navigate(r.chapter);
      });
      resultsEl.appendChild(div);
    });
    resultsEl.classList.toggle("hidden", resp.results.length === 0);
  }

  // Copy buttons: secure clipboard first, legacy select-and-copy fallback.
  document.addEventListener("click", function (ev) {
    const btn = ev.target.closest(".copy-btn");
    if (!btn) return;
    const code = btn.dataset.code || "";

    function done(label) {
      btn.textContent = label;
      setTimeout(function () { btn.textContent = "Copy"; }, 2000);
    }

    if (navigator.clipboard && window.isSecureContext) {
      navigator.clipboard.writeText(code).then(
        function () { done("Copied!"); },
        function () { done("Failed"); }
      );
      return;
    }
    const ta = document.createElement("textarea");
    ta.value = code;
    ta.style.position = "fixed";
    ta.style.left = "-9999px";
    document.body.appendChild(ta);
    ta.select();
    try {
      done(document.execCommand("copy") ? "Copied!" : "Failed");
    } catch (e) {
      done("Failed");
    }
    document.body.removeChild(ta);
  });

  document.getElementById("prev-btn").addEventListener("click", async function () {
    show(await api("/api/navigate/previous", {}));
  });
  document.getElementById("next-btn").addEventListener("click", async function () {
    show(await api("/api/navigate/next", {}));
  });

  if (window.DOCREAD && window.DOCREAD.watch) {
    const proto = location.protocol === "https:" ? "wss:" : "ws:";
    const ws = new WebSocket(proto + "//" + location.host + "/ws");
    ws.onmessage = function () { location.reload(); };
  }

  (async function init() {
    const book = await api("/api/book");
    state.chapters = book.chapters;
    renderList(book);
    setProgress(book.percent);
    navigate(book.current || (book.chapters[0] && book.chapters[0].id));
  })();
})();
`
