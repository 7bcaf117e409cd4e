package site

// pageTemplates holds the html/template definitions for every page.
const pageTemplates = `
{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <header class="top-bar">
    <a class="brand" href="{{.BasePath}}{{.HomeHref}}">{{.ProjectName}}</a>
    <nav class="top-links">
      {{range .Links}}<a href="{{$.BasePath}}{{.Href}}"{{if eq .Href $.Active}} class="active"{{end}}>{{.Label}}</a>
      {{end}}
    </nav>
    <div class="site-search">
      <input type="search" id="site-search" placeholder="Search..." autocomplete="off" data-base="{{.BasePath}}" aria-label="Search the site">
      <div class="search-results" id="search-results" hidden></div>
    </div>
  </header>
  <div class="layout">
    {{if .TreeHTML}}<aside class="side-nav docs-tree">{{.TreeHTML}}</aside>{{end}}
    <main class="content {{.MainClass}}"{{if .MainID}} id="{{.MainID}}"{{end}}>
{{.Content}}
    </main>
  </div>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>
{{end}}

{{define "changelog"}}{{if .Err}}<div class="load-error">
  <h2>Error Loading Changelog</h2>
  <p>Could not load {{.Source}}. Please ensure the file exists and is reachable.</p>
  <p class="load-error-detail">Error: {{.Err}}</p>
</div>{{else}}{{.HTML}}{{end}}{{end}}

{{define "overview"}}<header class="project-header">
  {{with .Project.TopChip}}<div class="top-chip">{{.}}</div>{{end}}
  <h1 class="project-title">{{.Project.Title}}</h1>
  {{with .Project.Subtitle}}<p class="project-subtitle">{{.}}</p>{{end}}
  {{with .Project.Pill}}<span class="project-pill">{{.}}</span>{{end}}
</header>
{{with .Hero}}<section class="hero" id="hero">
  <div class="hero-content">
    <div class="hero-left">
      <h1>{{if .Heading}}{{.Heading}}{{else}}Project Overview{{end}}</h1>
      <p class="hero-tagline">{{.Tagline}}</p>
      <div class="hero-meta-row">{{range .MetaTags}}<span class="hero-meta-tag">{{.}}</span>{{end}}</div>
      <div class="hero-badges">{{range .Badges}}<div class="badge"><span class="badge-dot"></span><span>{{.}}</span></div>{{end}}</div>
    </div>
    <aside class="hero-right">
      <div class="hero-right-header">
        <div class="hero-right-title">{{if .SnapshotLabel}}{{.SnapshotLabel}}{{else}}Build snapshot{{end}}</div>
        <div class="hero-badge-small">{{.SnapshotBadge}}</div>
      </div>
      <div class="hero-grid">{{range .Grid}}
        <div class="hero-grid-item">
          <div class="hero-grid-label">{{.Label}}</div>
          <div class="hero-grid-value">{{.Value}}</div>
          {{with .Note}}<div class="hero-grid-note">{{.}}</div>{{end}}
        </div>{{end}}
      </div>
    </aside>
  </div>
</section>{{end}}
<div class="overview-layout">
  {{if .Nav}}<nav class="side-nav" id="sideNav">
    <div class="side-nav-title">{{.NavTitle}}</div>
    <ul>{{range .Nav}}<li><a href="#{{.ID}}">{{.NavText}}</a></li>{{end}}</ul>
  </nav>{{end}}
  <div class="sections">
    {{range .Sections}}<section class="card" id="{{.ID}}">{{.HTML}}</section>
    {{end}}
  </div>
</div>
{{if .Gallery}}<div class="lightbox" id="lightbox" hidden>
  <button type="button" class="lightbox-close" aria-label="Close">&times;</button>
  <button type="button" class="lightbox-prev" aria-label="Previous">&#8249;</button>
  <figure><img id="lightboxImage" alt=""><figcaption id="lightboxCaption"></figcaption></figure>
  <button type="button" class="lightbox-next" aria-label="Next">&#8250;</button>
</div>{{end}}
<button type="button" class="back-to-top" id="backToTop" aria-label="Back to top">&uarr;</button>
{{end}}

{{define "section-paragraphs"}}<h2>{{.Heading}}</h2>
{{range .Body}}<p>{{.}}</p>
{{end}}{{end}}

{{define "section-design"}}<h2>{{.Heading}}</h2>
{{range .Body}}<p>{{inline .}}</p>
{{end}}{{end}}

{{define "section-links"}}<h2>{{.Heading}}</h2>
{{range .Body}}<p>{{inline .}}</p>
{{end}}<ul class="link-list">{{range .Links}}
  <li><strong><a href="{{.Href}}" target="_blank" rel="noopener noreferrer">{{.Label}}</a></strong>{{with .Note}}<br><span class="link-note">{{.}}</span>{{end}}</li>{{end}}
</ul>{{end}}

{{define "section-features"}}<h2>{{.Heading}}</h2>
<ul>{{range .Items}}<li><strong>{{.Strong}}</strong>{{with .Text}}: {{.}}{{end}}</li>{{end}}</ul>
{{if .Chips}}<div class="pill-row">{{range .Chips}}<span class="pill">{{.}}</span>{{end}}</div>{{end}}{{end}}

{{define "section-bullets"}}<h2>{{.Heading}}</h2>
<ul>{{range .Items}}<li>{{if .Strong}}<strong>{{.Strong}}</strong> {{end}}{{.Text}}</li>{{end}}</ul>{{end}}

{{define "section-gallery"}}<h2>{{.Heading}}</h2>
<p>Click any image to view it in full size.</p>
<div class="gallery-grid">{{range $i, $img := .Images}}
  <div class="gallery-item" data-index="{{$i}}">
    <img src="{{$img.Src}}" alt="{{$img.Caption}}" loading="lazy">
    <div class="gallery-item-caption">{{$img.Caption}}</div>
  </div>{{end}}
</div>{{end}}

{{define "section-filemap"}}{{with .FileMap}}<div class="file-map-header">
  <h2>{{$.Heading}}</h2>
  <div class="file-search">
    <span class="file-search-icon">&#128269;</span>
    <input id="fileSearchInput" type="search" placeholder="Filter files by name or folder..." aria-label="Filter file map">
  </div>
</div>
{{range .IntroParagraphs}}<p>{{.}}</p>
{{end}}{{if .FolderOverview}}<ul>{{range .FolderOverview}}<li><strong>{{.Name}}</strong>{{with .Description}} - {{.}}{{end}}</li>{{end}}</ul>{{end}}
{{with .AfterOverviewText}}<p>{{.}}</p>{{end}}
{{range .Groups}}<div class="file-section"{{with .ID}} id="files-{{.}}"{{end}}>
  <div class="file-section-header">
    <div class="file-section-title">{{.Title}}</div>
    <div class="file-section-tag">{{.Tag}}</div>
  </div>
  <ul class="file-list">{{range .Items}}
    <li class="file-item" data-file="{{.Key}}">
      <div class="file-main">
        <span class="file-path-prefix">{{.PathPrefix}}</span>
        <div class="file-name">{{if .Href}}<a href="{{.Href}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}{{with .Note}}<span class="file-note">– {{.}}</span>{{end}}</div>
      </div>
      {{with .CopyPath}}<button class="copy-btn" type="button" data-path="{{.}}"><span class="copy-btn-icon">&#128203;</span> Copy</button>{{end}}
    </li>{{end}}
  </ul>
</div>
{{end}}{{end}}{{end}}

{{define "section-descriptions"}}<h2>{{.Heading}}</h2>
{{with .FileDescriptions}}{{range .Categories}}<h3>{{.Title}}</h3>
<ul>{{range .Items}}<li><strong>{{.Name}}</strong>{{with .Description}} - {{.}}{{end}}</li>{{end}}</ul>
{{end}}{{end}}{{end}}
`

const cssContent = `:root {
  --color-bg: #0f1115;
  --color-surface: #171a21;
  --color-border: #262b36;
  --color-text: #e6e8ee;
  --color-text-muted: #9aa3b2;
  --color-accent: #5cc8ff;
  --radius: 10px;
  --font: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  --mono: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace;
}

* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { margin: 0; background: var(--color-bg); color: var(--color-text); font: 16px/1.6 var(--font); }
a { color: var(--color-accent); }
code { font-family: var(--mono); background: var(--color-surface); padding: 0.1em 0.35em; border-radius: 4px; }

.top-bar { position: sticky; top: 0; z-index: 10; display: flex; align-items: center; gap: 1.5rem; padding: 0.75rem 1.5rem; background: var(--color-surface); border-bottom: 1px solid var(--color-border); }
.brand { font-weight: 700; color: var(--color-text); text-decoration: none; }
.top-links a { margin-right: 1rem; color: var(--color-text-muted); text-decoration: none; }
.top-links a.active, .top-links a:hover { color: var(--color-accent); }
.site-search { position: relative; margin-left: auto; }
#site-search { width: 16rem; padding: 0.35rem 0.6rem; border-radius: var(--radius); border: 1px solid var(--color-border); background: var(--color-bg); color: var(--color-text); }
.search-results { position: absolute; right: 0; width: 24rem; max-height: 60vh; overflow: auto; background: var(--color-surface); border: 1px solid var(--color-border); border-radius: var(--radius); }
.search-results a { display: block; padding: 0.5rem 0.75rem; text-decoration: none; color: var(--color-text); }
.search-results a:hover { background: var(--color-border); }
.search-results small { display: block; color: var(--color-text-muted); }

.layout { display: flex; max-width: 1200px; margin: 0 auto; padding: 1.5rem; gap: 2rem; }
.content { flex: 1; min-width: 0; }
.changelog h1 { border-bottom: 1px solid var(--color-border); padding-bottom: 0.5rem; }
.changelog h2 { margin-top: 2rem; color: var(--color-accent); }
.load-error { padding: 2rem; }
.load-error-detail { font-size: 0.85rem; color: var(--color-text-muted); }

.side-nav { position: sticky; top: 4.5rem; align-self: flex-start; min-width: 12rem; font-size: 0.92rem; }
.side-nav ul { list-style: none; padding-left: 0.75rem; margin: 0; }
.side-nav a { color: var(--color-text-muted); text-decoration: none; }
.side-nav a.active { color: var(--color-accent); font-weight: 600; }
.side-nav-title { text-transform: uppercase; letter-spacing: 0.08em; font-size: 0.75rem; color: var(--color-text-muted); margin-bottom: 0.5rem; }
.docs-tree .dir > ul { display: none; }
.docs-tree .dir.expanded > ul { display: block; }
.dir-toggle { cursor: pointer; }

.project-header { margin-bottom: 1.5rem; }
.top-chip, .project-pill, .pill, .hero-meta-tag, .hero-badge-small { display: inline-block; padding: 0.15rem 0.6rem; border-radius: 999px; border: 1px solid var(--color-border); font-size: 0.8rem; color: var(--color-text-muted); }
.project-subtitle { color: var(--color-text-muted); margin: 0; }
.hero { background: var(--color-surface); border: 1px solid var(--color-border); border-radius: var(--radius); padding: 1.5rem; margin-bottom: 2rem; }
.hero-content { display: grid; grid-template-columns: 3fr 2fr; gap: 1.5rem; }
.hero-meta-row, .hero-badges, .pill-row { display: flex; flex-wrap: wrap; gap: 0.5rem; margin: 0.75rem 0; }
.badge { display: flex; align-items: center; gap: 0.4rem; font-size: 0.9rem; }
.badge-dot { width: 0.5rem; height: 0.5rem; border-radius: 50%; background: var(--color-accent); }
.hero-right-header { display: flex; justify-content: space-between; margin-bottom: 0.75rem; }
.hero-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 0.75rem; }
.hero-grid-item { border: 1px solid var(--color-border); border-radius: var(--radius); padding: 0.6rem; }
.hero-grid-label, .hero-grid-note { font-size: 0.78rem; color: var(--color-text-muted); }
.hero-grid-value { font-weight: 600; }

.overview-layout { display: flex; gap: 2rem; }
.sections { flex: 1; min-width: 0; }
.card { background: var(--color-surface); border: 1px solid var(--color-border); border-radius: var(--radius); padding: 1.25rem 1.5rem; margin-bottom: 1.5rem; scroll-margin-top: 5rem; }
.link-list { list-style: none; padding: 0; }
.link-note { color: var(--color-text-muted); font-size: 0.88rem; }

.file-map-header { display: flex; justify-content: space-between; align-items: center; gap: 1rem; }
.file-search { display: flex; align-items: center; gap: 0.4rem; }
#fileSearchInput { padding: 0.35rem 0.6rem; border-radius: var(--radius); border: 1px solid var(--color-border); background: var(--color-bg); color: var(--color-text); }
.file-section { margin-top: 1.25rem; }
.file-section-header { display: flex; justify-content: space-between; border-bottom: 1px solid var(--color-border); padding-bottom: 0.3rem; }
.file-section-title { font-family: var(--mono); font-weight: 600; }
.file-section-tag, .file-path-prefix, .file-note { color: var(--color-text-muted); font-size: 0.85rem; }
.file-list { list-style: none; padding: 0; margin: 0.5rem 0 0; }
.file-item { display: flex; justify-content: space-between; align-items: center; padding: 0.3rem 0; }
.file-item.hidden-by-filter { display: none; }
.file-main { display: flex; gap: 0.25rem; align-items: baseline; font-family: var(--mono); }
.file-note { margin-left: 0.4rem; font-family: var(--font); }
.copy-btn { background: none; border: 1px solid var(--color-border); border-radius: 6px; color: var(--color-text-muted); cursor: pointer; font-size: 0.8rem; }
.copy-btn.copied { color: var(--color-accent); }

.gallery-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 1rem; }
.gallery-item { cursor: zoom-in; }
.gallery-item img { width: 100%; border-radius: var(--radius); display: block; }
.gallery-item-caption { font-size: 0.85rem; color: var(--color-text-muted); text-align: center; }
.lightbox { position: fixed; inset: 0; z-index: 50; display: flex; align-items: center; justify-content: center; background: rgba(0, 0, 0, 0.88); }
.lightbox[hidden] { display: none; }
.lightbox img { max-width: 85vw; max-height: 80vh; }
.lightbox figcaption { text-align: center; color: var(--color-text-muted); }
.lightbox button { background: none; border: none; color: #fff; font-size: 2.5rem; cursor: pointer; padding: 1rem; }
.lightbox-close { position: absolute; top: 0.5rem; right: 1rem; }

.back-to-top { position: fixed; right: 1.5rem; bottom: 1.5rem; opacity: 0; pointer-events: none; transition: opacity 0.2s; border-radius: 50%; width: 2.5rem; height: 2.5rem; border: 1px solid var(--color-border); background: var(--color-surface); color: var(--color-text); cursor: pointer; }
.back-to-top.visible { opacity: 1; pointer-events: auto; }

@media (max-width: 860px) {
  .layout, .overview-layout { flex-direction: column; }
  .side-nav { position: static; }
  .hero-content { grid-template-columns: 1fr; }
  #site-search { width: 10rem; }
}
`

const jsContent = `(function() {
  "use strict";

  var BACK_TO_TOP_THRESHOLD = 260;
  var SCROLL_OFFSET_PX = 120;
  var COPY_RESET_MS = 900;

  // Back to top
  var backToTop = document.getElementById("backToTop");
  if (backToTop) {
    window.addEventListener("scroll", function() {
      backToTop.classList.toggle("visible", window.scrollY > BACK_TO_TOP_THRESHOLD);
    });
    backToTop.addEventListener("click", function() {
      window.scrollTo({ top: 0, behavior: "smooth" });
    });
  }

  // Scroll spy
  var navLinks = Array.prototype.slice.call(document.querySelectorAll("#sideNav a[href^='#']"));
  if (navLinks.length) {
    var tracked = navLinks.map(function(a) {
      return document.getElementById(a.getAttribute("href").slice(1));
    }).filter(Boolean);
    var updateActiveNav = function() {
      var fromTop = window.scrollY + SCROLL_OFFSET_PX;
      var currentId = null;
      tracked.forEach(function(section) {
        if (fromTop >= section.offsetTop && fromTop < section.offsetTop + section.offsetHeight) {
          currentId = section.id;
        }
      });
      navLinks.forEach(function(link) {
        link.classList.toggle("active", link.getAttribute("href") === "#" + currentId);
      });
    };
    updateActiveNav();
    window.addEventListener("scroll", updateActiveNav);
  }

  // File map filter
  var fileSearch = document.getElementById("fileSearchInput");
  if (fileSearch) {
    var items = Array.prototype.slice.call(document.querySelectorAll(".file-item"));
    fileSearch.addEventListener("input", function() {
      var query = fileSearch.value.toLowerCase().trim();
      items.forEach(function(item) {
        var file = item.getAttribute("data-file") || "";
        item.classList.toggle("hidden-by-filter", !!query && file.indexOf(query) === -1);
      });
    });
  }

  // Copy buttons
  if (navigator.clipboard) {
    document.querySelectorAll(".copy-btn").forEach(function(btn) {
      btn.addEventListener("click", function() {
        var path = btn.getAttribute("data-path");
        if (!path) return;
        navigator.clipboard.writeText(path).then(function() {
          var original = btn.innerHTML;
          btn.innerHTML = '<span class="copy-btn-icon">&#10003;</span> Copied!';
          btn.classList.add("copied");
          setTimeout(function() {
            btn.innerHTML = original;
            btn.classList.remove("copied");
          }, COPY_RESET_MS);
        });
      });
    });
  }

  // Lightbox
  var lightbox = document.getElementById("lightbox");
  if (lightbox) {
    var gallery = Array.prototype.slice.call(document.querySelectorAll(".gallery-item"));
    var image = document.getElementById("lightboxImage");
    var caption = document.getElementById("lightboxCaption");
    var current = 0;
    var show = function(index) {
      current = (index + gallery.length) % gallery.length;
      var img = gallery[current].querySelector("img");
      image.src = img.getAttribute("src");
      image.alt = img.getAttribute("alt");
      caption.textContent = img.getAttribute("alt");
      lightbox.hidden = false;
    };
    var close = function() { lightbox.hidden = true; };
    gallery.forEach(function(item, i) {
      item.addEventListener("click", function() { show(i); });
    });
    lightbox.querySelector(".lightbox-close").addEventListener("click", close);
    lightbox.querySelector(".lightbox-prev").addEventListener("click", function() { show(current - 1); });
    lightbox.querySelector(".lightbox-next").addEventListener("click", function() { show(current + 1); });
    lightbox.addEventListener("click", function(e) { if (e.target === lightbox) close(); });
    document.addEventListener("keydown", function(e) {
      if (lightbox.hidden) return;
      if (e.key === "Escape") close();
      if (e.key === "ArrowLeft") show(current - 1);
      if (e.key === "ArrowRight") show(current + 1);
    });
  }

  // Docs tree
  document.querySelectorAll(".dir-toggle").forEach(function(toggle) {
    toggle.addEventListener("click", function() {
      toggle.parentElement.classList.toggle("expanded");
    });
  });

  // Site search
  var search = document.getElementById("site-search");
  var results = document.getElementById("search-results");
  if (search && results) {
    var base = search.getAttribute("data-base") || "";
    var index = null;
    var load = function() {
      if (index) return Promise.resolve(index);
      return fetch(base + "search-index.json").then(function(r) {
        if (!r.ok) throw new Error("HTTP " + r.status);
        return r.json();
      }).then(function(data) { index = data; return data; });
    };
    search.addEventListener("input", function() {
      var q = search.value.toLowerCase().trim();
      if (q.length < 2) { results.hidden = true; return; }
      load().then(function(entries) {
        var hits = entries.filter(function(e) {
          return (e.title + " " + e.content).toLowerCase().indexOf(q) !== -1;
        }).slice(0, 10);
        results.innerHTML = "";
        hits.forEach(function(e) {
          var a = document.createElement("a");
          a.href = base + e.path;
          a.textContent = e.title;
          if (e.summary) {
            var s = document.createElement("small");
            s.textContent = e.summary;
            a.appendChild(s);
          }
          results.appendChild(a);
        });
        results.hidden = hits.length === 0;
      }).catch(function(err) {
        console.error("Failed to load search index:", err);
      });
    });
  }
})();
`
