package main

// renderInfobarPage generates the HTML infobar page the stub host serves at
// its root. It mirrors the view's surface (same target and control names) and
// speaks the same channel protocol over the page's own websocket, which makes
// it a quick browser-side smoke check for the host.
func renderInfobarPage() string {
	return `<!DOCTYPE html>
<html>
<head><style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: -apple-system, BlinkMacSystemFont, sans-serif;
    background: #8fb3e3;
    color: white;
}
.infobar { display: flex; align-items: center; height: 60px; padding: 0 10px; }
.readouts { flex: 1; text-align: center; }
#time-utc { font-size: 24px; font-weight: bold; }
#date-display { font-size: 12px; }
.hamburger-icon { font-size: 18px; width: 30px; cursor: pointer; text-align: center; }
.hamburger-icon.active { color: #194771; }
.overlay-options { display: none; padding: 8px 10px; background: #194771; }
.overlay-options.open { display: block; }
.overlay-options button { display: block; margin: 4px 0; }
</style></head>
<body>
<div class="infobar">
  <div class="readouts">
    <div id="time-utc">--:-- UTC</div>
    <div id="date-display">YYYY/MM/DD</div>
  </div>
  <div class="hamburger-icon">&#9776;</div>
</div>
<div class="overlay-options">
  <button class="overlay-button">Change overlay</button>
  <button class="settings-button">Settings</button>
  <button class="output-button">Show output</button>
</div>
<script>
function pad(n) { return String(n).padStart(2, "0"); }
function render() {
    var now = new Date();
    var t = document.getElementById("time-utc");
    if (t) t.textContent = pad(now.getUTCHours()) + ":" + pad(now.getUTCMinutes()) + " UTC";
    var d = document.getElementById("date-display");
    if (d) d.textContent = now.getUTCFullYear() + "-" + pad(now.getUTCMonth() + 1) + "-" + pad(now.getUTCDate());
}
render();
setInterval(render, 1000);

var sock = new WebSocket("ws://" + location.host + "/channel");
sock.onopen = function () { sock.send(JSON.stringify({type: "handshake"})); };
function invoke(object, method) {
    sock.send(JSON.stringify({
        type: "invoke",
        id: String(Date.now()),
        object: object,
        method: method
    }));
}
sock.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type !== "catalog") return;
    if (msg.objects.indexOf("bridge") >= 0) {
        var icon = document.querySelector(".hamburger-icon");
        icon.addEventListener("click", function () {
            icon.classList.toggle("active");
            document.querySelector(".overlay-options").classList.toggle("open");
            invoke("bridge", "hamburgerClicked");
        });
    }
    if (msg.objects.indexOf("overlay") >= 0) {
        var options = {
            "overlay-button": "overlayButtonClicked",
            "settings-button": "settingsButtonClicked",
            "output-button": "outputButtonClicked"
        };
        Object.keys(options).forEach(function (cls) {
            document.querySelector("." + cls).addEventListener("click", function () {
                invoke("overlay", options[cls]);
            });
        });
    }
};
</script>
</body>
</html>`
}
