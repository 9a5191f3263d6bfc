package site

// pageTemplate is the Go html/template for the single portfolio page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme.Name}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Head.Title}}</title>
  <meta name="description" content="{{.Head.Description}}">
  <meta name="keywords" content="{{.Head.Keywords}}">
  <meta name="author" content="{{.Head.Author}}">
  <meta name="robots" content="index, follow">
  <meta property="og:type" content="website">
  <meta property="og:title" content="{{.Head.Title}}">
  <meta property="og:description" content="{{.Head.Description}}">
  <meta property="og:url" content="{{.Head.Canonical}}">
  {{- if .Head.Image}}
  <meta property="og:image" content="{{.Head.Image}}">
  <meta name="twitter:image" content="{{.Head.Image}}">
  {{- end}}
  <meta name="twitter:card" content="summary_large_image">
  <meta name="twitter:title" content="{{.Head.Title}}">
  <meta name="twitter:description" content="{{.Head.Description}}">
  <link rel="canonical" href="{{.Head.Canonical}}">
  <link rel="icon" href="{{.Head.Favicon}}">
  <link rel="stylesheet" href="style.css?v={{.BuildID}}">
</head>
<body class="{{.Palette.Text}}">
  <div class="orbs" aria-hidden="true">
    <div class="orb orb-1 {{.Palette.Orb}}"></div>
    <div class="orb orb-2 {{.Palette.Orb}}"></div>
    <div class="orb orb-3 {{.Palette.Orb}}"></div>
    <div class="orb orb-4 {{.Palette.Orb}}"></div>
  </div>

  <nav class="navbar {{.Card false}}" id="navbar">
    <div class="nav-inner">
      <a href="#home" class="brand">{{.Hero.Initials}}</a>
      <ul class="nav-links">
        {{- range .Nav}}
        <li><a href="#{{.Anchor}}" class="nav-link {{$.Palette.TextSecondary}}">{{.Name}}</a></li>
        {{- end}}
      </ul>
      <div class="nav-actions">
        <button class="theme-toggle {{.Palette.Icon}}" id="theme-toggle" aria-label="Toggle theme">
          <span class="moon">{{icon "moon"}}</span>
          <span class="sun">{{icon "sun"}}</span>
        </button>
        <button class="menu-toggle" id="menu-toggle" aria-label="Toggle menu" aria-expanded="false">
          <span class="menu-open">{{icon "menu"}}</span>
          <span class="menu-close">{{icon "x"}}</span>
        </button>
      </div>
    </div>
    <ul class="mobile-menu" id="mobile-menu">
      {{- range .Nav}}
      <li><a href="#{{.Anchor}}" class="nav-link {{$.Palette.TextSecondary}}">{{.Name}}</a></li>
      {{- end}}
    </ul>
  </nav>

  <main>
    <section id="home" class="hero">
      <div class="hero-content" id="hero-content">
        <div class="avatar">{{.Hero.Initials}}</div>
        {{- range $i, $line := .Hero.Lines}}
        {{- if eq $i 0}}
        <h1 class="hero-title gradient-text" data-line="{{$i}}">{{$line}}</h1>
        {{- else if eq $i 1}}
        <p class="hero-subtitle {{$.Palette.TextAccent}}" data-line="{{$i}}">{{$line}}</p>
        {{- else}}
        <p class="hero-location {{$.Palette.TextSecondary}}">{{icon "map-pin"}}<span data-line="{{$i}}">{{$line}}</span></p>
        {{- end}}
        {{- end}}
        <div class="hero-actions">
          <a href="{{.Hero.CVLink}}" class="button button-primary" download>{{icon "download"}}Download CV</a>
          <a href="#contact" class="button {{.Palette.Outline}}">Contact Me</a>
        </div>
        <div class="socials">
          {{- range .Hero.Socials}}
          <a href="{{.Href}}" class="social {{$.Card true}}" aria-label="{{.Label}}" target="_blank" rel="noopener noreferrer">{{.Icon}}</a>
          {{- end}}
        </div>
      </div>
      <a href="#about" class="scroll-hint {{.Palette.TextSecondary}}" aria-label="Scroll to about">&#8595;</a>
    </section>

    <section id="about" class="section">
      <h2 class="section-title reveal" data-delay="0s">About <span class="gradient-text">Me</span></h2>
      <div class="about-grid">
        <div class="about-text reveal {{.Card false}}" data-delay="0.1s">
          {{- range .About.Paragraphs}}
          <div class="prose {{$.Palette.TextSecondary}}">{{.}}</div>
          {{- end}}
          <div class="badges">
            {{- range .About.Badges}}
            <span class="badge reveal {{$.Palette.Badge}}" data-delay="{{.Delay}}">{{.Text}}</span>
            {{- end}}
          </div>
        </div>
        <div class="values">
          {{- range .About.Values}}
          <div class="value reveal {{$.Card true}}" data-delay="{{.Delay}}">
            <div class="value-icon">{{.Icon}}</div>
            <h3>{{.Title}}</h3>
            <p class="{{$.Palette.TextSecondary}}">{{.Description}}</p>
          </div>
          {{- end}}
        </div>
      </div>
    </section>

    <section id="skills" class="section">
      <h2 class="section-title reveal" data-delay="0s">My <span class="gradient-text">Skills</span></h2>
      <div class="skills-grid">
        {{- range $cat := .Skills}}
        <div class="category reveal {{$.Card true}}" data-delay="{{$cat.Delay}}">
          <h3 class="category-title accent-{{$cat.Color}}">{{$cat.Name}}</h3>
          {{- range $cat.Skills}}
          <div class="skill reveal" data-delay="{{.Delay}}">
            <div class="skill-head">
              <span class="skill-icon">{{.Icon}}</span>
              <span class="skill-name">{{.Name}}</span>
              <span class="skill-level {{$.Palette.TextAccent}}">{{.LevelText}}</span>
            </div>
            <div class="track {{$.Palette.Track}}">
              <div class="bar accent-{{$cat.Color}}" style="--level: {{.Level}}%" data-delay="{{.BarDelay}}"></div>
            </div>
          </div>
          {{- end}}
        </div>
        {{- end}}
      </div>
    </section>

    <section id="projects" class="section">
      <h2 class="section-title reveal" data-delay="0s">Featured <span class="gradient-text">Projects</span></h2>
      <div class="projects-grid">
        {{- range .Projects}}
        <article class="project reveal {{$.Card true}}" data-delay="{{.Delay}}">
          <div class="project-image"><img src="{{.Image}}" alt="{{.Title}}" loading="lazy"></div>
          <div class="project-body">
            <h3>{{.Title}}</h3>
            <div class="prose {{$.Palette.TextSecondary}}">{{.Description}}</div>
            <div class="tech">
              {{- range .Tech}}
              <span class="badge {{$.Palette.Badge}}">{{.}}</span>
              {{- end}}
            </div>
            <div class="project-links">
              {{- range .Links}}
              <a href="{{.Href}}" class="button {{if .Primary}}button-primary{{else}}{{$.Palette.Outline}}{{end}}" target="_blank" rel="noopener noreferrer">{{.Icon}}{{.Label}}</a>
              {{- end}}
            </div>
          </div>
        </article>
        {{- end}}
      </div>
    </section>

    <section id="contact" class="section">
      <h2 class="section-title reveal" data-delay="0s">Get In <span class="gradient-text">Touch</span></h2>
      <div class="contact-grid">
        <div class="contact-pitch reveal {{.Card false}}" data-delay="0.1s">
          <h3>{{.Contact.Heading}}</h3>
          <p class="{{.Palette.TextSecondary}}">{{.Contact.Pitch}}</p>
          <div class="socials">
            {{- range .Contact.Socials}}
            <a href="{{.Href}}" class="social {{$.Card true}}" aria-label="{{.Label}}" target="_blank" rel="noopener noreferrer">{{.Icon}}</a>
            {{- end}}
          </div>
        </div>
        <div class="channels">
          {{- range .Contact.Channels}}
          <a href="{{.Href}}" class="channel reveal {{$.Card true}}" data-delay="{{.Delay}}">
            <span class="channel-icon">{{.Icon}}</span>
            <span class="channel-text">
              <span class="channel-title">{{.Title}}</span>
              <span class="{{$.Palette.TextSecondary}}">{{.Info}}</span>
            </span>
          </a>
          {{- end}}
        </div>
      </div>
    </section>
  </main>

  <footer class="footer {{.Card false}}">
    <p class="{{.Palette.TextSecondary}}">{{.Footer.Copyright}}</p>
    <div class="socials">
      {{- range .Footer.Socials}}
      <a href="{{.Href}}" class="social" aria-label="{{.Label}}" target="_blank" rel="noopener noreferrer">{{.Icon}}</a>
      {{- end}}
    </div>
  </footer>

  <script id="page-data" type="application/json">{{.Data}}</script>
  <script src="script.js?v={{.BuildID}}"></script>
</body>
</html>`

// cssContent is the stylesheet, including the light and dark palette classes
// the theme toggle swaps between.
const cssContent = `/* ============ Base ============ */
:root {
  --violet: #7c3aed;
  --pink: #db2777;
  --ink: #1f2937;
  --ink-soft: #4b5563;
  --snow: #f9fafb;
  --snow-soft: #d1d5db;
  --radius: 1rem;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

html { scroll-behavior: smooth; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  line-height: 1.6;
  min-height: 100vh;
  overflow-x: hidden;
  transition: background-color 0.3s ease, color 0.3s ease;
}

html[data-theme="light"] body { background-color: #f0f4ff; }
html[data-theme="dark"] body { background-color: #0f0f23; }

a { color: inherit; text-decoration: none; }

.icon { width: 1.25rem; height: 1.25rem; flex-shrink: 0; }

/* ============ Palette ============ */
.text-ink { color: var(--ink); }
.text-ink-soft { color: var(--ink-soft); }
.text-violet { color: var(--violet); }
.text-snow { color: var(--snow); }
.text-snow-soft { color: var(--snow-soft); }
.text-lilac { color: #c4b5fd; }

.badge-light { background: rgba(124, 58, 237, 0.1); color: var(--violet); border: 1px solid rgba(124, 58, 237, 0.2); }
.badge-dark { background: rgba(196, 181, 253, 0.1); color: #c4b5fd; border: 1px solid rgba(196, 181, 253, 0.2); }

.track-light { background: rgba(31, 41, 55, 0.1); }
.track-dark { background: rgba(249, 250, 251, 0.1); }

.outline-light { border: 1px solid rgba(124, 58, 237, 0.4); color: var(--violet); }
.outline-dark { border: 1px solid rgba(196, 181, 253, 0.4); color: #c4b5fd; }

.orb-light { background: radial-gradient(circle, rgba(167, 139, 250, 0.35), transparent 70%); }
.orb-dark { background: radial-gradient(circle, rgba(109, 40, 217, 0.35), transparent 70%); }

/* ============ Glass cards ============ */
.glass {
  border-radius: var(--radius);
  backdrop-filter: blur(16px);
  -webkit-backdrop-filter: blur(16px);
  transition: transform 0.3s ease, box-shadow 0.3s ease, background 0.3s ease;
}
.glass-light { background: rgba(255, 255, 255, 0.6); border: 1px solid rgba(255, 255, 255, 0.8); box-shadow: 0 8px 32px rgba(31, 38, 135, 0.08); }
.glass-dark { background: rgba(255, 255, 255, 0.05); border: 1px solid rgba(255, 255, 255, 0.1); box-shadow: 0 8px 32px rgba(0, 0, 0, 0.3); }
.glass-hover-light:hover { transform: translateY(-4px); box-shadow: 0 12px 40px rgba(124, 58, 237, 0.15); }
.glass-hover-dark:hover { transform: translateY(-4px); box-shadow: 0 12px 40px rgba(124, 58, 237, 0.3); }

.gradient-text {
  background: linear-gradient(90deg, var(--violet), var(--pink));
  -webkit-background-clip: text;
  background-clip: text;
  color: transparent;
}
.accent-purple-pink { background: linear-gradient(90deg, var(--violet), var(--pink)); }
.category-title.accent-purple-pink { -webkit-background-clip: text; background-clip: text; color: transparent; }

/* ============ Orbs ============ */
.orbs { position: fixed; inset: 0; pointer-events: none; z-index: -1; overflow: hidden; }
.orb { position: absolute; width: 24rem; height: 24rem; border-radius: 50%; animation: float 12s ease-in-out infinite; }
.orb-1 { top: -6rem; left: -6rem; }
.orb-2 { top: 30%; right: -8rem; animation-delay: -3s; }
.orb-3 { bottom: 10%; left: 20%; animation-delay: -6s; }
.orb-4 { bottom: -8rem; right: 25%; animation-delay: -9s; }

@keyframes float {
  0%, 100% { transform: translate(0, 0) scale(1); }
  50% { transform: translate(2rem, -2rem) scale(1.1); }
}

/* ============ Navigation ============ */
.navbar { position: fixed; top: 1rem; left: 50%; transform: translateX(-50%); width: min(64rem, calc(100% - 2rem)); z-index: 50; padding: 0.75rem 1.25rem; }
.nav-inner { display: flex; align-items: center; justify-content: space-between; }
.brand { font-weight: 800; font-size: 1.25rem; }
.nav-links { display: flex; gap: 1.5rem; list-style: none; }
.nav-link { font-weight: 500; transition: color 0.2s ease; }
.nav-link:hover { color: var(--violet); }
.nav-actions { display: flex; gap: 0.5rem; }
.theme-toggle, .menu-toggle { background: none; border: none; cursor: pointer; color: inherit; padding: 0.5rem; border-radius: 50%; }
.icon-moon .sun, .icon-sun .moon { display: none; }
.menu-toggle { display: none; }
.menu-close { display: none; }
.navbar.open .menu-open { display: none; }
.navbar.open .menu-close { display: inline; }
.mobile-menu { display: none; list-style: none; padding-top: 0.75rem; }
.navbar.open .mobile-menu { display: block; }
.mobile-menu li { padding: 0.5rem 0; }

/* ============ Hero ============ */
.hero { min-height: 100vh; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 6rem 1rem 2rem; position: relative; }
.hero-content { will-change: transform, opacity; }
.avatar { width: 8rem; height: 8rem; margin: 0 auto 2rem; border-radius: 50%; display: flex; align-items: center; justify-content: center; font-size: 2.5rem; font-weight: 800; color: #fff; background: linear-gradient(135deg, var(--violet), var(--pink)); }
.hero-title { font-size: clamp(2.5rem, 8vw, 4.5rem); font-weight: 800; min-height: 1.2em; }
.hero-subtitle { font-size: clamp(1.25rem, 4vw, 2rem); font-weight: 600; min-height: 1.5em; }
.hero-location { display: flex; align-items: center; justify-content: center; gap: 0.5rem; min-height: 1.5em; margin-top: 0.5rem; }
.typing::after { content: "|"; margin-left: 2px; animation: blink 1s step-end infinite; }
@keyframes blink { 50% { opacity: 0; } }
.hero-actions { display: flex; gap: 1rem; justify-content: center; margin: 2rem 0; flex-wrap: wrap; }
.js .hero-actions, .js .hero .socials { opacity: 0; transition: opacity 0.6s ease; }
.js .typed .hero-actions, .js .typed .socials { opacity: 1; }
.scroll-hint { position: absolute; bottom: 2rem; font-size: 1.5rem; animation: bounce 2s infinite; }
@keyframes bounce { 0%, 100% { transform: translateY(0); } 50% { transform: translateY(0.5rem); } }

.button { display: inline-flex; align-items: center; gap: 0.5rem; padding: 0.75rem 1.5rem; border-radius: 9999px; font-weight: 600; transition: transform 0.2s ease, box-shadow 0.2s ease; }
.button:hover { transform: scale(1.05); }
.button-primary { color: #fff; background: linear-gradient(90deg, var(--violet), var(--pink)); box-shadow: 0 4px 20px rgba(124, 58, 237, 0.3); }

.socials { display: flex; gap: 1rem; justify-content: center; }
.social { display: inline-flex; padding: 0.75rem; border-radius: 50%; }

/* ============ Sections ============ */
.section { max-width: 72rem; margin: 0 auto; padding: 6rem 1rem; }
.section-title { font-size: clamp(2rem, 5vw, 3rem); font-weight: 800; text-align: center; margin-bottom: 3rem; }
.prose p { margin-bottom: 1rem; }
.prose strong { color: var(--violet); }

.about-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; align-items: start; }
.about-text { padding: 2rem; }
.badges, .tech { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-top: 1rem; }
.badge { padding: 0.25rem 0.75rem; border-radius: 9999px; font-size: 0.875rem; font-weight: 500; }
.values { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; }
.value { padding: 1.5rem; }
.value-icon { color: var(--violet); margin-bottom: 0.75rem; }
.value h3 { margin-bottom: 0.5rem; }

.skills-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(18rem, 1fr)); gap: 1.5rem; }
.category { padding: 1.5rem; }
.category-title { font-size: 1.25rem; margin-bottom: 1.25rem; }
.skill { margin-bottom: 1rem; }
.skill-head { display: flex; align-items: center; gap: 0.5rem; margin-bottom: 0.375rem; }
.skill-name { flex: 1; font-weight: 500; }
.skill-level { font-weight: 600; font-size: 0.875rem; }
.track { height: 0.5rem; border-radius: 9999px; overflow: hidden; }
.bar { height: 100%; width: var(--level); border-radius: 9999px; }
.js .bar { width: 0; transition: width 1s ease-out; }
.js .visible .bar { width: var(--level); }

.projects-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(20rem, 1fr)); gap: 2rem; }
.project { overflow: hidden; display: flex; flex-direction: column; }
.project-image { aspect-ratio: 16 / 9; overflow: hidden; }
.project-image img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.5s ease; }
.project:hover .project-image img { transform: scale(1.1); }
.project-body { padding: 1.5rem; display: flex; flex-direction: column; gap: 0.75rem; flex: 1; }
.project-links { display: flex; gap: 0.75rem; margin-top: auto; }

.contact-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; }
.contact-pitch { padding: 2rem; }
.contact-pitch h3 { font-size: 1.5rem; margin-bottom: 1rem; }
.contact-pitch .socials { justify-content: flex-start; margin-top: 1.5rem; }
.channels { display: flex; flex-direction: column; gap: 1rem; }
.channel { display: flex; align-items: center; gap: 1rem; padding: 1.25rem; }
.channel-icon { display: inline-flex; padding: 0.75rem; border-radius: 50%; color: #fff; background: linear-gradient(135deg, var(--violet), var(--pink)); }
.channel-text { display: flex; flex-direction: column; }
.channel-title { font-weight: 600; }

.footer { max-width: 72rem; margin: 0 auto 1rem; padding: 1.5rem; display: flex; align-items: center; justify-content: space-between; width: calc(100% - 2rem); }

/* ============ Reveal ============ */
.js .reveal { opacity: 0; transform: translateY(2rem); transition: opacity 0.6s ease, transform 0.6s ease; }
.js .reveal.visible { opacity: 1; transform: none; }

/* ============ Responsive ============ */
@media (max-width: 768px) {
  .nav-links { display: none; }
  .menu-toggle { display: inline-flex; }
  .about-grid, .contact-grid, .values { grid-template-columns: 1fr; }
  .footer { flex-direction: column; gap: 1rem; }
}

@media (prefers-reduced-motion: reduce) {
  html { scroll-behavior: auto; }
  .orb, .scroll-hint, .typing::after { animation: none; }
}
`

// jsContent is the page script. It replays precomputed data from the
// page-data blob: class swaps for the theme, typewriter frames and scroll
// tables. Nothing is stored across reloads.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var dataEl = document.getElementById("page-data");
  var data = dataEl ? JSON.parse(dataEl.textContent) : { theme: "light", swaps: [], typewriter: [], scroll: null };
  var isDark = data.theme === "dark";

  html.classList.add("js");

  // ===== Theme toggle =====
  function applyTheme(dark) {
    data.swaps.forEach(function(swap) {
      var from = dark ? swap.light : swap.dark;
      var to = dark ? swap.dark : swap.light;
      document.querySelectorAll("." + from).forEach(function(el) {
        el.classList.replace(from, to);
      });
    });
    html.setAttribute("data-theme", dark ? "dark" : "light");
    onScroll();
  }

  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      isDark = !isDark;
      applyTheme(isDark);
    });
  }

  // ===== Mobile menu =====
  var navbar = document.getElementById("navbar");
  var menuToggle = document.getElementById("menu-toggle");

  function setMenu(open) {
    navbar.classList.toggle("open", open);
    menuToggle.setAttribute("aria-expanded", open ? "true" : "false");
  }

  if (navbar && menuToggle) {
    menuToggle.addEventListener("click", function() {
      setMenu(!navbar.classList.contains("open"));
    });
    navbar.querySelectorAll(".mobile-menu a").forEach(function(link) {
      link.addEventListener("click", function() { setMenu(false); });
    });
  }

  // ===== Typewriter =====
  var hero = document.getElementById("hero-content");
  var timers = [];

  function playTypewriter() {
    var lines = data.typewriter || [];
    var end = 0;
    lines.forEach(function(frames, i) {
      var el = document.querySelector('[data-line="' + i + '"]');
      if (!el || frames.length === 0) return;
      el.textContent = frames[0].text;
      var start = frames[0].at;
      timers.push(setTimeout(function() { el.classList.add("typing"); }, start));
      frames.forEach(function(frame) {
        timers.push(setTimeout(function() { el.textContent = frame.text; }, frame.at));
      });
      var last = frames[frames.length - 1].at;
      timers.push(setTimeout(function() { el.classList.remove("typing"); }, last));
      end = Math.max(end, last);
    });
    timers.push(setTimeout(function() {
      if (hero) hero.classList.add("typed");
    }, end));
  }

  window.addEventListener("pagehide", function() {
    timers.forEach(clearTimeout);
    timers = [];
  });

  if (window.matchMedia && window.matchMedia("(prefers-reduced-motion: reduce)").matches) {
    if (hero) hero.classList.add("typed");
  } else {
    playTypewriter();
  }

  // ===== Scroll parallax =====
  var ticking = false;

  function onScroll() {
    var table = data.scroll;
    if (!table || !table.y || table.y.length === 0) return;
    var max = document.documentElement.scrollHeight - window.innerHeight;
    var progress = max > 0 ? window.scrollY / max : 0;
    progress = Math.min(Math.max(progress, 0), 1);
    var pos = progress * (table.y.length - 1);
    var i = Math.min(Math.floor(pos), table.y.length - 1);
    var j = Math.min(i + 1, table.y.length - 1);
    var t = pos - i;
    if (hero) {
      hero.style.transform = "translateY(" + lerp(table.y[i], table.y[j], t) + "px)";
      hero.style.opacity = lerp(table.opacity[i], table.opacity[j], t);
    }
    // Colors step to the nearest sample.
    document.body.style.backgroundColor = (isDark ? table.dark : table.light)[t < 0.5 ? i : j];
  }

  function lerp(a, b, t) {
    return a + (b - a) * t;
  }

  window.addEventListener("scroll", function() {
    if (ticking) return;
    ticking = true;
    window.requestAnimationFrame(function() {
      onScroll();
      ticking = false;
    });
  }, { passive: true });
  window.addEventListener("resize", onScroll);
  onScroll();

  // ===== Reveal on view =====
  function reveal(el) {
    el.style.transitionDelay = el.getAttribute("data-delay") || "0s";
    el.querySelectorAll(".bar").forEach(function(bar) {
      bar.style.transitionDelay = bar.getAttribute("data-delay") || "0s";
    });
    el.classList.add("visible");
  }

  var revealed = document.querySelectorAll(".reveal");
  if ("IntersectionObserver" in window) {
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (!entry.isIntersecting) return;
        reveal(entry.target);
        observer.unobserve(entry.target);
      });
    }, { threshold: 0.1 });
    revealed.forEach(function(el) { observer.observe(el); });
  } else {
    revealed.forEach(reveal);
  }
})();
`

// placeholderSVG is written as /placeholder.svg when the assets directory
// does not provide one.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="675" viewBox="0 0 1200 675">
  <defs>
    <linearGradient id="g" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0" stop-color="#7c3aed" stop-opacity="0.25"/>
      <stop offset="1" stop-color="#db2777" stop-opacity="0.25"/>
    </linearGradient>
  </defs>
  <rect width="1200" height="675" fill="url(#g)"/>
  <g fill="none" stroke="#7c3aed" stroke-width="12" stroke-linecap="round" stroke-linejoin="round" opacity="0.6">
    <polyline points="660 410 750 337 660 265"/>
    <polyline points="540 265 450 337 540 410"/>
  </g>
</svg>
`
