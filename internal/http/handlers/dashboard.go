package handlers

import (
	"html/template"
	"net/http"

	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

// DashboardHandler serves the operator dashboard page.
type DashboardHandler struct {
	baseURL     string
	verifyToken string
	logger      *logging.Logger
	tmpl        *template.Template
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(baseURL, verifyToken string, logger *logging.Logger) *DashboardHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardHandler{
		baseURL:     baseURL,
		verifyToken: verifyToken,
		logger:      logger,
		tmpl:        template.Must(template.New("dashboard").Parse(dashboardHTML)),
	}
}

type dashboardData struct {
	WebhookURL  string
	VerifyToken string
}

// IndexPage handles GET / requests.
func (h *DashboardHandler) IndexPage(w http.ResponseWriter, r *http.Request) {
	base := h.baseURL
	if base == "" && r.Host != "" {
		scheme := "https"
		if r.TLS == nil {
			scheme = "http"
		}
		base = scheme + "://" + r.Host
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, dashboardData{
		WebhookURL:  base + "/api/webhook",
		VerifyToken: h.verifyToken,
	}); err != nil {
		h.logger.Error("failed to render dashboard", "error", err)
	}
}

const dashboardHTML = `<!DOCTYPE html>
<html dir="rtl" lang="he">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>בוט מספרת ירון</title>
<style>
body { font-family: system-ui, sans-serif; background: linear-gradient(135deg, #25D366, #128C7E); min-height: 100vh; padding: 20px; margin: 0; }
.container { max-width: 900px; margin: 0 auto; }
.card { background: white; padding: 24px; border-radius: 16px; margin-bottom: 20px; box-shadow: 0 8px 24px rgba(0,0,0,0.1); }
.mono { background: #f8f9fa; padding: 14px; border-radius: 10px; font-family: monospace; word-break: break-all; border: 2px solid #25D366; margin: 10px 0; }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 16px; }
.stat { background: white; padding: 18px; border-radius: 12px; text-align: center; }
.stat .value { font-size: 2em; color: #25D366; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h1>🤖 בוט מספרת ירון</h1>
    <p>הבוט פעיל ומחכה לחיבור עם WhatsApp Business</p>
  </div>
  <div class="card">
    <h3>📋 חיבור Webhook</h3>
    <strong>Webhook URL:</strong>
    <div class="mono">{{.WebhookURL}}</div>
    <strong>Verify Token:</strong>
    <div class="mono">{{.VerifyToken}}</div>
  </div>
  <div class="stats">
    <div class="stat"><h3>💬 הודעות</h3><div class="value" id="messageCount">0</div></div>
    <div class="stat"><h3>👤 לקוחות</h3><div class="value" id="customerCount">0</div></div>
    <div class="stat"><h3>📊 סטטוס</h3><div class="value">🟢</div><div id="uptime"></div></div>
  </div>
</div>
<script>
async function loadStats() {
  try {
    const res = await fetch('/api/stats');
    const data = await res.json();
    document.getElementById('messageCount').textContent = data.totalMessages || 0;
    document.getElementById('customerCount').textContent = data.totalCustomers || 0;
    document.getElementById('uptime').textContent = data.server ? data.server.uptimeFormatted : '';
  } catch (err) {
    console.error('stats load failed', err);
  }
}
loadStats();
setInterval(loadStats, 30000);
</script>
</body>
</html>`
