package sink

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/matzehuels/roadmap/pkg/drawer"
	"github.com/matzehuels/roadmap/pkg/graph"
)

// HTMLOption configures HTML rendering.
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	svgOpts []SVGOption
	title   string
}

// WithHTMLSVGOptions passes options through to the embedded SVG. WithGraph
// and WithSelected also feed the drawer; WithDrawer is ignored because the
// page has its own drawer.
func WithHTMLSVGOptions(opts ...SVGOption) HTMLOption {
	return func(r *htmlRenderer) { r.svgOpts = opts }
}

// WithTitle overrides the page title. The default is the scene title.
func WithTitle(title string) HTMLOption {
	return func(r *htmlRenderer) { r.title = title }
}

type detailResource struct {
	Glyph       string `json:"glyph"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Caption     string `json:"caption"`
	Placeholder bool   `json:"placeholder"`
}

type detail struct {
	Title       string           `json:"title"`
	Category    string           `json:"category,omitempty"`
	Label       string           `json:"label,omitempty"`
	Kind        string           `json:"kind"`
	Description string           `json:"description,omitempty"`
	Resources   []detailResource `json:"resources,omitempty"`
}

type pageText struct {
	NoSelection string `json:"noSelection"`
	Unavailable string `json:"unavailable"`
	Heading     string `json:"heading"`
	CTA         string `json:"cta"`
}

type pageData struct {
	Title      string
	Background string
	SVG        template.HTML
	Details    map[string]detail
	Selected   string
	Text       pageText
}

// RenderHTML renders the scene as a standalone interactive page.
func RenderHTML(l graph.Layout, opts ...HTMLOption) ([]byte, error) {
	h := htmlRenderer{title: l.Title}
	for _, opt := range opts {
		opt(&h)
	}
	if h.title == "" {
		h.title = "Roadmap"
	}

	r := newSVGRenderer(h.svgOpts...)
	svgOpts := append([]SVGOption{}, h.svgOpts...)
	svgOpts = append(svgOpts, func(sr *svgRenderer) { sr.drawer = false })

	data := pageData{
		Title:      h.title,
		Background: r.style.Background(),
		SVG:        template.HTML(RenderSVG(l, svgOpts...)),
		Details:    details(r, l),
		Selected:   r.selected,
		Text: pageText{
			NoSelection: drawer.NoSelection,
			Unavailable: drawer.Unavailable,
			Heading:     drawer.Heading,
			CTA:         drawer.CTA,
		},
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

// details collects drawer content for every scene node the graph knows.
// Nodes missing from the graph get no entry, so the page shows the
// Unavailable placeholder for them.
func details(r svgRenderer, l graph.Layout) map[string]detail {
	out := make(map[string]detail, len(l.Nodes))
	if r.graph == nil {
		return out
	}
	for _, n := range l.Nodes {
		v := drawer.ForNode(r.graph, n.ID)
		if !v.Available {
			continue
		}
		d := detail{
			Title:       v.Title,
			Category:    v.Category,
			Label:       v.Label,
			Kind:        v.Kind.String(),
			Description: v.Description,
		}
		for _, res := range v.Resources {
			d.Resources = append(d.Resources, detailResource{
				Glyph:       res.Icon.Glyph(),
				Icon:        string(res.Icon),
				Title:       res.Title,
				URL:         res.URL,
				Caption:     res.Caption,
				Placeholder: res.Placeholder,
			})
		}
		out[n.ID] = d
	}
	return out
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { margin: 0; font-family: system-ui, sans-serif; background: {{.Background}}; }
  main { overflow: auto; }
  main svg { display: block; margin: 0 auto; }
  .node.selected { stroke: #f59e0b; stroke-width: 3.5; }
  .drawer { position: fixed; top: 0; right: 0; width: 340px; height: 100%; box-sizing: border-box;
            padding: 24px; background: #fff; color: #0f172a; box-shadow: -4px 0 16px rgba(0,0,0,.15);
            transform: translateX(100%); transition: transform .25s ease; overflow-y: auto; }
  .drawer.open { transform: translateX(0); }
  .drawer .close { position: absolute; top: 12px; right: 16px; border: 0; background: none; font-size: 22px; cursor: pointer; }
  .drawer .category { color: #64748b; font-size: 13px; margin: 0; }
  .drawer h2 { margin: 4px 0 12px; }
  .drawer .placeholder { color: #64748b; text-align: center; margin-top: 40%; }
  .drawer ul { list-style: none; padding: 0; }
  .drawer li { margin: 10px 0; }
  .drawer .caption { display: block; color: #64748b; font-size: 12px; margin-left: 1.4em; }
  .drawer .cta { display: block; margin-top: 24px; padding: 8px; text-align: center; border-radius: 6px;
                 background: #f59e0b; color: #0f172a; text-decoration: none; }
</style>
</head>
<body>
<main>
{{.SVG}}
</main>
<aside id="drawer" class="drawer" aria-hidden="true">
  <button id="drawer-close" class="close" type="button" aria-label="Close">&times;</button>
  <div id="drawer-body"></div>
</aside>
<script type="application/json" id="roadmap-details">{{.Details}}</script>
<script>
(function () {
  const details = JSON.parse(document.getElementById('roadmap-details').textContent);
  const text = {{.Text}};
  const initial = {{.Selected}};
  const drawer = document.getElementById('drawer');
  const body = document.getElementById('drawer-body');
  let state = { active: false, id: '' };

  function el(tag, cls, content) {
    const e = document.createElement(tag);
    if (cls) e.className = cls;
    if (content) e.textContent = content;
    return e;
  }

  function render() {
    document.querySelectorAll('.node').forEach(n =>
      n.classList.toggle('selected', state.active && n.dataset.id === state.id));
    drawer.classList.toggle('open', state.active);
    drawer.setAttribute('aria-hidden', String(!state.active));
    body.replaceChildren();
    if (!state.active) {
      body.appendChild(el('p', 'placeholder', text.noSelection));
      return;
    }
    const d = details[state.id];
    if (!d) {
      body.appendChild(el('p', 'placeholder', text.unavailable));
      return;
    }
    if (d.category) body.appendChild(el('p', 'category', d.category));
    body.appendChild(el('h2', '', d.title));
    if (d.description) body.appendChild(el('p', 'description', d.description));
    if (d.resources && d.resources.length) {
      body.appendChild(el('h3', '', text.heading));
      const list = el('ul');
      d.resources.forEach(r => {
        const item = el('li', 'resource ' + r.icon);
        const link = el('a', '', r.glyph + ' ' + r.title);
        if (!r.placeholder) { link.href = r.url; link.target = '_blank'; link.rel = 'noopener'; }
        item.appendChild(link);
        item.appendChild(el('span', 'caption', r.caption));
        list.appendChild(item);
      });
      body.appendChild(list);
    }
    const cta = el('a', 'cta', text.cta);
    cta.href = '#';
    cta.addEventListener('click', ev => ev.preventDefault());
    body.appendChild(cta);
  }

  function select(id) {
    state = { active: true, id: id };
    render();
  }

  function clear() {
    if (!state.active) return;
    state = { active: false, id: '' };
    render();
  }

  document.querySelectorAll('.node.clickable').forEach(n =>
    n.addEventListener('click', ev => { ev.stopPropagation(); select(n.dataset.id); }));
  document.getElementById('drawer-close').addEventListener('click', clear);
  document.addEventListener('keydown', ev => { if (ev.key === 'Escape') clear(); });

  if (initial) select(initial); else render();
})();
</script>
</body>
</html>
`))
