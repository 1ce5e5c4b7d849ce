package export

// pageTemplate is the whole exported document. The script block is
// dependency-free and mirrors the live engine's indexing, styling and
// placement rules, constant for constant; change either side only in
// step with the other. The SVG source is a template literal, so the
// script avoids backticks and ${ everywhere else.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; }
#svg-map-container { position: relative; width: 100%; }
#svg-map-container svg { display: block; width: 100%; height: auto; }
#svg-map-tooltip {
  position: absolute;
  display: none;
  max-width: 280px;
  padding: 10px 12px;
  border-radius: 6px;
  background-color: {{.Settings.BackgroundColor}};
  color: {{.Settings.TextColor}};
  box-shadow: 0 4px 12px rgba(0, 0, 0, 0.25);
  z-index: 10;
}
#svg-map-tooltip-title { font-size: {{.Settings.TitleFontSize}}px; font-weight: 600; }
#svg-map-tooltip-description { font-size: {{.Settings.DescriptionFontSize}}px; margin-top: 4px; }
#svg-map-tooltip-image { display: none; max-width: 100%; border-radius: 4px; margin-bottom: 6px; }
#svg-map-tooltip-close {
  position: absolute;
  top: 2px;
  right: 4px;
  border: none;
  background: none;
  color: inherit;
  font-size: 14px;
  cursor: pointer;
}
.svg-map-label { pointer-events: none; font-size: 12px; fill: currentColor; }
</style>
</head>
<body>
<div id="svg-map-container"></div>
<div id="svg-map-tooltip">
  <button id="svg-map-tooltip-close" type="button" aria-label="Close">&#215;</button>
  <img id="svg-map-tooltip-image" alt="">
  <div id="svg-map-tooltip-title"></div>
  <div id="svg-map-tooltip-description"></div>
</div>
<script>
(function () {
  "use strict";

  var svgSource = {{.BQ}}{{.SVG}}{{.BQ}};
  var regionData = {{.DataJSON}};
  var settings = {{.SettingsJSON}};

  var HOVER_GAP = 15;
  var CLICK_GAP = 10;
  var EDGE_PAD = 10;
  var ID_PREFIX = "map-region-";
  var SELECT_STROKE = "#2563eb";
  var SELECT_STROKE_WIDTH = "2";

  var container = document.getElementById("svg-map-container");
  var tooltip = document.getElementById("svg-map-tooltip");
  var tooltipImage = document.getElementById("svg-map-tooltip-image");
  var tooltipTitle = document.getElementById("svg-map-tooltip-title");
  var tooltipDescription = document.getElementById("svg-map-tooltip-description");
  var closeButton = document.getElementById("svg-map-tooltip-close");

  container.innerHTML = svgSource;
  var svg = container.querySelector("svg");
  if (!svg) {
    return;
  }

  var clickMode = settings.trigger === "click";
  if (!clickMode) {
    closeButton.style.display = "none";
  }

  var selected = null;
  var selectedOriginalStroke = null;

  function clampChannel(v) {
    return Math.min(255, Math.max(0, v));
  }

  function shade(hexColor, percent) {
    var hex = String(hexColor).replace("#", "");
    if (hex.length === 3) {
      hex = hex.replace(/(.)/g, "$1$1");
    }
    var num = parseInt(hex, 16);
    if (hex.length !== 6 || isNaN(num)) {
      return hexColor;
    }
    var amt = (percent < 0 ? -1 : 1) * Math.round(Math.abs(2.55 * percent));
    var r = clampChannel((num >> 16) + amt);
    var g = clampChannel(((num >> 8) & 255) + amt);
    var b = clampChannel((num & 255) + amt);
    return "#" + (0x1000000 + r * 0x10000 + g * 0x100 + b).toString(16).slice(1);
  }

  var baseFill = settings.defaultRegionColor;
  var hoverFill = shade(baseFill, -10);

  function cssEscape(value) {
    if (window.CSS && window.CSS.escape) {
      return window.CSS.escape(value);
    }
    return String(value).replace(/[^a-zA-Z0-9_-]/g, function (ch) {
      return "\\" + ch;
    });
  }

  function regionById(id) {
    try {
      return svg.querySelector("#" + cssEscape(id));
    } catch (err) {
      return null;
    }
  }

  function indexRegions() {
    var counter = 0;
    var shapes = svg.querySelectorAll("path, g, rect, circle, polygon, ellipse");
    for (var i = 0; i < shapes.length; i++) {
      if (!shapes[i].getAttribute("id")) {
        shapes[i].setAttribute("id", ID_PREFIX + counter);
        counter++;
      }
    }
  }

  function hasTooltipContent(rec) {
    return Boolean(rec.title || rec.description || rec.tooltipImageSrc);
  }

  function fillTooltip(rec) {
    tooltipTitle.textContent = rec.title || "";
    tooltipTitle.style.display = rec.title ? "block" : "none";
    tooltipDescription.textContent = rec.description || "";
    tooltipDescription.style.display = rec.description ? "block" : "none";
    if (rec.tooltipImageSrc) {
      tooltipImage.src = rec.tooltipImageSrc;
      tooltipImage.style.display = "block";
    } else {
      tooltipImage.removeAttribute("src");
      tooltipImage.style.display = "none";
    }
  }

  function hideTooltip() {
    tooltip.style.display = "none";
    tooltip.style.visibility = "";
  }

  function measureThenPlace(place) {
    tooltip.style.visibility = "hidden";
    tooltip.style.display = "block";
    tooltip.style.left = "0px";
    tooltip.style.top = "0px";
    var pos = place(tooltip.offsetWidth, tooltip.offsetHeight);
    if (!pos) {
      hideTooltip();
      return;
    }
    tooltip.style.left = pos.left + "px";
    tooltip.style.top = pos.top + "px";
    tooltip.style.visibility = "visible";
  }

  function placeHover(evt, tipW, tipH) {
    var left = evt.clientX + HOVER_GAP;
    if (left + tipW > window.innerWidth) {
      left = evt.clientX - tipW - HOVER_GAP;
    }
    var top = evt.clientY + HOVER_GAP;
    if (top + tipH > window.innerHeight) {
      top = evt.clientY - tipH - HOVER_GAP;
    }
    var origin = container.getBoundingClientRect();
    return { left: left - origin.left, top: top - origin.top };
  }

  function placeClick(el, tipW, tipH) {
    var vb = svg.viewBox && svg.viewBox.baseVal;
    if (!vb || vb.width <= 0 || vb.height <= 0) {
      return null;
    }
    var bbox;
    try {
      bbox = el.getBBox();
    } catch (err) {
      return null;
    }
    var origin = container.getBoundingClientRect();
    var svgRect = svg.getBoundingClientRect();
    var rectLeft = svgRect.left - origin.left;
    var rectTop = svgRect.top - origin.top;
    var scaleX = svgRect.width / vb.width;
    var scaleY = svgRect.height / vb.height;

    var centerX = rectLeft + (bbox.x + bbox.width / 2 - vb.x) * scaleX;
    var topY = rectTop + (bbox.y - vb.y) * scaleY;
    var bottomY = rectTop + (bbox.y + bbox.height - vb.y) * scaleY;

    var top = topY - tipH - CLICK_GAP;
    if (top < 0) {
      top = bottomY + CLICK_GAP;
    }
    var left = centerX - tipW / 2;
    if (left < 0) {
      left = EDGE_PAD;
    }
    if (left + tipW > container.clientWidth) {
      left = container.clientWidth - tipW - EDGE_PAD;
    }
    return { left: left, top: top };
  }

  function restoreSelectedStroke() {
    if (!selected) {
      return;
    }
    selected.style.stroke = selectedOriginalStroke.stroke;
    selected.style.strokeWidth = selectedOriginalStroke.strokeWidth;
    selected = null;
    selectedOriginalStroke = null;
  }

  function selectRegion(el) {
    if (selected === el) {
      return;
    }
    restoreSelectedStroke();
    selected = el;
    selectedOriginalStroke = {
      stroke: el.style.stroke,
      strokeWidth: el.style.strokeWidth
    };
    el.style.stroke = SELECT_STROKE;
    el.style.strokeWidth = SELECT_STROKE_WIDTH;
  }

  function deselect() {
    restoreSelectedStroke();
    hideTooltip();
  }

  function bindRegion(id, rec) {
    var el = regionById(id);
    if (!el) {
      return;
    }
    el.style.fill = baseFill;
    el.style.cursor = "pointer";

    el.addEventListener("mouseenter", function () {
      el.style.fill = hoverFill;
      if (!clickMode && hasTooltipContent(rec)) {
        fillTooltip(rec);
      }
    });
    el.addEventListener("mouseleave", function () {
      el.style.fill = baseFill;
      if (!clickMode) {
        hideTooltip();
      }
    });
    if (!clickMode) {
      el.addEventListener("mousemove", function (evt) {
        if (!hasTooltipContent(rec)) {
          return;
        }
        measureThenPlace(function (w, h) {
          return placeHover(evt, w, h);
        });
      });
    }
    el.addEventListener("click", function (evt) {
      evt.stopPropagation();
      if (!clickMode) {
        if (rec.link) {
          window.open(rec.link, "_blank", "noopener");
        }
        return;
      }
      selectRegion(el);
      if (!hasTooltipContent(rec)) {
        hideTooltip();
        return;
      }
      fillTooltip(rec);
      measureThenPlace(function (w, h) {
        return placeClick(el, w, h);
      });
    });
  }

  function addLabels() {
    var ids = Object.keys(regionData);
    for (var i = 0; i < ids.length; i++) {
      var rec = regionData[ids[i]];
      if (!rec || !rec.title) {
        continue;
      }
      var el = regionById(ids[i]);
      if (!el) {
        continue;
      }
      try {
        var bbox = el.getBBox();
        if (!(bbox.width > 0) || !(bbox.height > 0)) {
          continue;
        }
        var label = document.createElementNS("http://www.w3.org/2000/svg", "text");
        label.setAttribute("x", bbox.x + bbox.width / 2);
        label.setAttribute("y", bbox.y + bbox.height / 2);
        label.setAttribute("text-anchor", "middle");
        label.setAttribute("dominant-baseline", "middle");
        label.setAttribute("class", "svg-map-label");
        label.textContent = rec.title;
        svg.appendChild(label);
      } catch (err) {
        continue;
      }
    }
  }

  indexRegions();
  Object.keys(regionData).forEach(function (id) {
    bindRegion(id, regionData[id]);
  });
  addLabels();

  if (clickMode) {
    container.addEventListener("click", deselect);
    closeButton.addEventListener("click", function (evt) {
      evt.stopPropagation();
      deselect();
    });
    tooltip.addEventListener("click", function (evt) {
      evt.stopPropagation();
    });
  }
})();
</script>
</body>
</html>
`
