// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the server-side pages and serves static assets.

Templates and assets are embedded. Each page template defines "content"
(and optionally "scripts") and is combined with layout.html:

	r, err := views.New()
	err = r.Render(w, http.StatusOK, views.PageAdmin, views.PageData{...})

Static serves /static/css and /static/js, including the Chart.js renderer
that builds the houses × events chart from /data/chart-data.
*/
package views
