package pages

// Every .snap-section is exactly one viewport tall. The live section tracker
// maps scroll offsets to sections by dividing by the viewport height, so any
// change to section sizing must keep that rule.
const cssContent = `:root {
  --red-dark: #920000; --red: #c93834; --red-bright: #BF1B2C; --yellow: #fdbd51;
  --blue: #355e82; --blue-light: #c4daf4; --offwhite: #F7F6F2; --green: #6E903C; --green-light: #A0BB3B;
}
* { box-sizing: border-box; }
html, body { margin: 0; padding: 0; }
body { font-family: Jost, "Helvetica Neue", Arial, sans-serif; color: #222; background: var(--offwhite); }
a { color: inherit; }

.navbar { position: fixed; top: 0; left: 0; right: 0; z-index: 50; display: flex; align-items: center;
  justify-content: space-between; padding: 12px 24px; background: rgba(146, 0, 0, 0.92); color: #fff; }
.navbar .brand { font-weight: 700; text-decoration: none; }
.nav-links { display: flex; gap: 24px; list-style: none; margin: 0; padding: 0; }
.nav-links a { text-decoration: none; }
.menu-toggle { display: none; background: none; border: 0; color: #fff; font-size: 24px; }
@media (max-width: 768px) {
  .menu-toggle { display: block; }
  .nav-links { display: none; position: absolute; top: 100%; left: 0; right: 0; flex-direction: column;
    padding: 16px 24px; background: var(--red-dark); }
  .navbar.open .nav-links { display: flex; }
}

.snap-page { overflow: hidden; }
.snap-container { height: 100vh; overflow-y: auto; scroll-snap-type: y mandatory; }
.snap-section { height: 100vh; scroll-snap-align: start; display: flex; align-items: center;
  justify-content: center; overflow: hidden; }
.page-container section { padding: 96px 24px 48px; }
.section-inner { max-width: 1100px; width: 100%; padding: 72px 24px 24px; }

.theme-red-dark { background: var(--red-dark); color: #fff; }
.theme-red { background: var(--red); color: #fff; }
.theme-yellow { background: var(--yellow); color: #222; }
.theme-blue { background: var(--blue); color: #fff; }
.theme-green { background: var(--green); color: #fff; }
.theme-white { background: #fff; }
.theme-offwhite { background: var(--offwhite); }

.eyebrow { text-transform: uppercase; letter-spacing: 0.2em; font-size: 0.85rem; font-weight: 600; color: var(--yellow); }
.theme-yellow .eyebrow, .theme-offwhite .eyebrow, .theme-white .eyebrow { color: var(--red); }
h1 { font-size: clamp(2.5rem, 6vw, 4.5rem); line-height: 1.1; margin: 0 0 24px; }
h2 { font-size: clamp(2rem, 5vw, 3.75rem); line-height: 1.1; margin: 0 0 24px; }
.prose { font-size: 1.15rem; line-height: 1.6; max-width: 760px; }
.prose blockquote { font-size: 1.6rem; font-style: italic; margin: 0 0 16px; }
.actions { display: flex; flex-wrap: wrap; gap: 16px; margin-top: 24px; }
.button { display: inline-block; padding: 12px 28px; border-radius: 999px; background: var(--yellow);
  color: #222; font-weight: 600; text-decoration: none; }

.cards, .cultivar-grid, .partner-grid, .licensee-grid, .location-grid { display: grid; gap: 24px; }
.cards { grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); }
.card { display: block; padding: 32px; border-radius: 16px; background: rgba(255, 255, 255, 0.2);
  border: 2px solid rgba(255, 255, 255, 0.3); text-decoration: none; }
.cultivar-grid { grid-template-columns: repeat(2, 1fr); margin: 24px 0; }
.cultivar img { width: 100%; height: auto; border-radius: 16px; display: block; }
.partner-grid, .licensee-grid, .location-grid { grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); }
.supplier-list { list-style: none; padding: 0; }
.supplier-list li { padding: 12px 0; border-bottom: 1px solid rgba(255, 255, 255, 0.25); }

.site-form { display: grid; gap: 12px; max-width: 640px; }
.site-form input, .site-form textarea, .site-form select { width: 100%; padding: 12px 16px; border-radius: 8px;
  border: 2px solid rgba(0, 0, 0, 0.15); font: inherit; }
.site-form button { padding: 14px; border: 0; border-radius: 8px; background: var(--yellow); font-weight: 700; cursor: pointer; }
.site-form button[disabled] { opacity: 0.6; cursor: wait; }
.form-status.error { color: var(--red-bright); }
.form-status.ok { color: var(--green); }

.reveal { opacity: 0; transform: translateY(24px); transition: opacity 0.6s ease, transform 0.6s ease; }
.in-view .reveal, .plain-page .reveal { opacity: 1; transform: none; }

.has-intro .snap-container { visibility: hidden; }
.has-intro.content-visible .snap-container { visibility: visible; }
.intro-overlay { position: fixed; inset: 0; z-index: 100; display: flex; align-items: center; justify-content: center;
  background: var(--red-bright); color: #fff; text-align: center; transition: opacity 1.5s ease, transform 1s ease; }
.intro-company { font-size: 1.25rem; letter-spacing: 0.2em; text-transform: uppercase; }
.intro-tagline { font-size: clamp(2rem, 5vw, 3.5rem); font-weight: 700; }
.intro-overlay[data-phase="revealing"] { transform: translateY(-8vh); }
.intro-overlay[data-phase="fading-out"] { opacity: 0; }
.intro-overlay[data-phase="done"] { display: none; }

.footer { padding: 32px 24px; background: var(--offwhite); text-align: center; font-size: 0.9rem; }
`

const jsContent = `(function () {
  'use strict';
  var body = document.body;
  var container = document.getElementById('container');
  var sections = Array.prototype.slice.call(document.querySelectorAll('main > section'));
  var overlay = document.getElementById('intro');
  var VISIT_KEY = 'cbc-intro-seen';
  var ws = null;
  var live = false;
  var detached = false;

  function markActive(index) {
    body.setAttribute('data-active', String(index));
    sections.forEach(function (s, i) { s.classList.toggle('in-view', i <= index); });
  }

  function showContent() { body.classList.add('content-visible'); }

  function setPhase(phase) {
    if (overlay) overlay.setAttribute('data-phase', phase);
  }

  function lastVisit() {
    try { return parseInt(sessionStorage.getItem(VISIT_KEY) || '0', 10) || 0; } catch (e) { return 0; }
  }

  function navType() {
    var nav = performance.getEntriesByType ? performance.getEntriesByType('navigation')[0] : null;
    return nav ? nav.type : 'navigate';
  }

  function send(msg) {
    if (live && ws.readyState === 1) ws.send(JSON.stringify(msg));
  }

  // Without a live session the page behaves as a plain document.
  function standalone() {
    if (live || detached) return;
    detached = true;
    setPhase('done');
    showContent();
    var onScroll = function () {
      var h = container.clientHeight;
      if (h > 0) markActive(Math.round(container.scrollTop / h));
    };
    container.addEventListener('scroll', onScroll, { passive: true });
    markActive(0);
    if (location.hash) {
      var target = document.getElementById(location.hash.slice(1));
      if (target) container.scrollTo({ top: target.offsetTop, behavior: 'instant' });
    }
  }

  function handle(msg) {
    switch (msg.type) {
      case 'active':
        markActive(msg.index);
        break;
      case 'scroll_to':
        var target = document.getElementById(msg.key);
        if (target) container.scrollTo({ top: target.offsetTop, behavior: 'instant' });
        break;
      case 'intro':
        setPhase(msg.phase);
        break;
      case 'reveal':
        body.setAttribute('data-reveal', msg.immediate ? 'immediate' : 'animated');
        break;
      case 'visible':
        showContent();
        break;
      case 'visit':
        try { sessionStorage.setItem(VISIT_KEY, String(msg.at_ms)); } catch (e) {}
        break;
      case 'error':
        if (window.console) console.warn('live session:', msg.message);
        break;
    }
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    try {
      ws = new WebSocket(proto + '//' + location.host + '/ws/page');
    } catch (e) {
      standalone();
      return;
    }
    var timer = setTimeout(standalone, 2000);
    ws.onopen = function () {
      clearTimeout(timer);
      live = true;
      send({
        type: 'mount',
        path: location.pathname,
        fragment: location.hash.slice(1),
        nav_type: navType(),
        last_visit_ms: lastVisit(),
        viewport: container.clientHeight
      });
    };
    ws.onmessage = function (ev) {
      try { handle(JSON.parse(ev.data)); } catch (e) {}
    };
    ws.onerror = function () { clearTimeout(timer); standalone(); };
    ws.onclose = function () { live = false; };
  }

  var pending = false;
  container.addEventListener('scroll', function () {
    if (pending) return;
    pending = true;
    requestAnimationFrame(function () {
      pending = false;
      send({ type: 'scroll', scroll_top: container.scrollTop, viewport_height: container.clientHeight });
    });
  }, { passive: true });

  if (overlay) {
    window.addEventListener('wheel', function (e) { send({ type: 'input', kind: 'wheel', delta_y: e.deltaY }); }, { passive: true });
    window.addEventListener('touchstart', function () { send({ type: 'input', kind: 'touchstart' }); }, { passive: true });
    window.addEventListener('keydown', function (e) { send({ type: 'input', kind: 'keydown', key: e.key }); });
  }
  window.addEventListener('pageshow', function (e) { send({ type: 'pageshow', persisted: !!e.persisted }); });

  var toggle = document.querySelector('.menu-toggle');
  if (toggle) toggle.addEventListener('click', function () { document.querySelector('.navbar').classList.toggle('open'); });

  Array.prototype.forEach.call(document.querySelectorAll('form.site-form'), function (form) {
    var status = form.querySelector('.form-status');
    var button = form.querySelector('button[type=submit]');
    function report(text, ok) {
      status.textContent = text;
      status.className = 'form-status ' + (ok ? 'ok' : 'error');
    }
    form.addEventListener('submit', function (e) {
      e.preventDefault();
      var missing = Array.prototype.filter.call(form.querySelectorAll('[required]'), function (el) {
        return !el.value || !el.value.trim();
      });
      if (missing.length) {
        report('Please fill in all required fields.', false);
        missing[0].focus();
        return;
      }
      var file = form.querySelector('input[type=file]');
      if (file && file.files.length) {
        var f = file.files[0];
        if (f.size > parseInt(file.getAttribute('data-max-bytes'), 10)) { report('Resume must be 5MB or smaller.', false); return; }
        if (!/\.pdf$/i.test(f.name)) { report('Resume must be a PDF.', false); return; }
      }
      var init = { method: 'POST' };
      var data = new FormData(form);
      data.append('timestamp', new Date().toISOString());
      if (form.getAttribute('data-kind') === 'json') {
        var obj = {};
        data.forEach(function (v, k) { obj[k] = v; });
        init.headers = { 'Content-Type': 'application/json' };
        init.body = JSON.stringify(obj);
      } else {
        init.body = data;
      }
      button.disabled = true;
      report('Sending…', true);
      fetch(form.getAttribute('data-endpoint'), init)
        .then(function (res) { return res.json().then(function (j) { return { ok: res.ok, body: j }; }); })
        .then(function (r) {
          if (!r.ok) throw new Error(r.body && r.body.error);
          report('Thank you! We\'ll be in touch soon.', true);
          form.reset();
        })
        .catch(function () { report('There was an error. Please try again.', false); })
        .then(function () { button.disabled = false; });
    });
  });

  connect();
})();
`
