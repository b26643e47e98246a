package element

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// htmlElements lists HTML element names, including void elements and the
// template placeholders <template> and <slot>.
var htmlElements = set(
	"html", "body", "base", "head", "link", "meta", "style", "title",
	"address", "article", "aside", "footer", "header", "h1", "h2", "h3",
	"h4", "h5", "h6", "hgroup", "nav", "section", "div", "dd", "dl", "dt",
	"figcaption", "figure", "hr", "img", "li", "main", "ol", "p", "pre",
	"ul", "a", "b", "abbr", "bdi", "bdo", "br", "cite", "code", "data",
	"dfn", "em", "i", "kbd", "mark", "q", "rp", "rt", "rtc", "ruby", "s",
	"samp", "small", "span", "strong", "sub", "sup", "time", "u", "var",
	"wbr", "area", "audio", "map", "track", "video", "embed", "object",
	"param", "source", "canvas", "script", "noscript", "del", "ins",
	"caption", "col", "colgroup", "table", "thead", "tbody", "tfoot", "td",
	"th", "tr", "button", "datalist", "fieldset", "form", "input", "label",
	"legend", "meter", "optgroup", "option", "output", "progress", "select",
	"textarea", "details", "dialog", "menu", "menuitem", "summary",
	"content", "element", "shadow", "template", "slot", "blockquote",
	"iframe", "noframes", "picture", "search",
)

// svgElements lists SVG element names. They are native even outside an
// <svg> subtree.
var svgElements = set(
	"a", "animate", "animateMotion", "animateTransform", "audio", "canvas",
	"circle", "clipPath", "defs", "desc", "discard", "ellipse", "feBlend",
	"feColorMatrix", "feComponentTransfer", "feComposite",
	"feConvolveMatrix", "feDiffuseLighting", "feDisplacementMap",
	"feDistantLight", "feDropShadow", "feFlood", "feFuncA", "feFuncB",
	"feFuncG", "feFuncR", "feGaussianBlur", "feImage", "feMerge",
	"feMergeNode", "feMorphology", "feOffset", "fePointLight",
	"feSpecularLighting", "feSpotLight", "feTile", "feTurbulence", "filter",
	"foreignObject", "g", "iframe", "image", "line", "linearGradient",
	"marker", "mask", "metadata", "mpath", "path", "pattern", "polygon",
	"polyline", "radialGradient", "rect", "script", "set", "stop", "style",
	"svg", "switch", "symbol", "text", "textPath", "title", "tspan",
	"unknown", "use", "video", "view",
)
