// book-watch renders a live order book for one or more outcome tokens,
// driven by the market WebSocket channel.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/roushou/polyte/clob/ws"
	"github.com/roushou/polyte/pkg/config"
	"github.com/roushou/polyte/pkg/logger"
)

const defaultDepth = 5

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	bidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	askStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

type level struct {
	price float64
	size  float64
}

type book struct {
	bids      []level
	asks      []level
	lastTrade string
	updated   time.Time
}

type model struct {
	conn    *ws.Conn
	assets  []string
	books   map[string]*book
	depth   int
	err     error
	stopped bool
}

// messages from the stream pump
type (
	bookMsg struct {
		assetID string
		bids    []level
		asks    []level
	}
	lastTradeMsg struct {
		assetID string
		price   string
	}
	streamErrMsg struct{ err error }

	// skipMsg keeps the pump alive across events that don't affect the view.
	skipMsg struct{}
)

func newModel(conn *ws.Conn, assets []string, depth int) model {
	books := make(map[string]*book, len(assets))
	for _, id := range assets {
		books[id] = &book{}
	}
	return model{conn: conn, assets: assets, books: books, depth: depth}
}

func (m model) Init() tea.Cmd {
	return m.nextEvent()
}

// nextEvent pulls one message from the stream and converts it for the UI.
func (m model) nextEvent() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.conn.Next(context.Background())
		if err != nil {
			return streamErrMsg{err: err}
		}
		switch ev := msg.(type) {
		case *ws.BookMessage:
			return bookMsg{assetID: ev.AssetID, bids: toLevels(ev.Bids), asks: toLevels(ev.Asks)}
		case *ws.LastTradePriceMessage:
			return lastTradeMsg{assetID: ev.AssetID, price: ev.Price}
		default:
			// Other market events don't change the rendering; keep pulling.
			return skipMsg{}
		}
	}
}

func toLevels(side []ws.OrderSummary) []level {
	levels := make([]level, 0, len(side))
	for _, s := range side {
		price, err1 := strconv.ParseFloat(s.Price, 64)
		size, err2 := strconv.ParseFloat(s.Size, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		levels = append(levels, level{price: price, size: size})
	}
	return levels
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.stopped = true
			m.conn.Close()
			return m, tea.Quit
		}
		return m, nil

	case bookMsg:
		if b, ok := m.books[msg.assetID]; ok {
			b.bids = msg.bids
			b.asks = msg.asks
			b.updated = time.Now()
		}
		return m, m.nextEvent()

	case lastTradeMsg:
		if b, ok := m.books[msg.assetID]; ok {
			b.lastTrade = msg.price
			b.updated = time.Now()
		}
		return m, m.nextEvent()

	case streamErrMsg:
		m.err = msg.err
		return m, tea.Quit

	case skipMsg:
		return m, m.nextEvent()
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("polyte book-watch"))
	sb.WriteString("  ")
	sb.WriteString(dimStyle.Render("q to quit"))
	sb.WriteString("\n\n")

	for _, id := range m.assets {
		sb.WriteString(borderStyle.Render(m.renderBook(id)))
		sb.WriteString("\n")
	}

	if m.err != nil {
		sb.WriteString(askStyle.Render(fmt.Sprintf("stream ended: %v", m.err)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) renderBook(assetID string) string {
	b := m.books[assetID]

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(shorten(assetID)))
	if b.lastTrade != "" {
		sb.WriteString(dimStyle.Render("  last " + b.lastTrade))
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%10s %12s    %10s %12s", "BID", "SIZE", "ASK", "SIZE")))
	sb.WriteString("\n")

	bids := topLevels(b.bids, true, m.depth)
	asks := topLevels(b.asks, false, m.depth)
	for i := 0; i < m.depth; i++ {
		sb.WriteString(renderLevel(bids, i, bidStyle))
		sb.WriteString("    ")
		sb.WriteString(renderLevel(asks, i, askStyle))
		sb.WriteString("\n")
	}
	return sb.String()
}

// topLevels sorts one side best-first and keeps the display depth.
func topLevels(side []level, descending bool, depth int) []level {
	sorted := make([]level, len(side))
	copy(sorted, side)
	sort.Slice(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].price > sorted[j].price
		}
		return sorted[i].price < sorted[j].price
	})
	if len(sorted) > depth {
		sorted = sorted[:depth]
	}
	return sorted
}

func renderLevel(side []level, i int, style lipgloss.Style) string {
	if i >= len(side) {
		return fmt.Sprintf("%10s %12s", "-", "-")
	}
	return style.Render(fmt.Sprintf("%10.4f %12.2f", side[i].price, side[i].size))
}

func shorten(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:8] + "…" + id[len(id)-8:]
}

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "watcher YAML config; token args override its list")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-config file] [token-id...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	assets := flag.Args()
	depth := defaultDepth
	var opts []ws.Option

	if *configPath != "" {
		cfg, err := config.LoadWatcher(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		if err := logger.Init(cfg.Log.Logger()); err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		if len(assets) == 0 {
			assets = cfg.Tokens
		}
		depth = cfg.Depth
		if cfg.URL != "" {
			opts = append(opts, ws.WithURL(cfg.URL))
		}
		if cfg.PingInterval > 0 {
			opts = append(opts, ws.WithPingInterval(cfg.PingInterval))
		}
	} else {
		logger.InitDefault()
	}

	if len(assets) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	conn, err := ws.ConnectMarket(ctx, assets, opts...)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	if _, err := tea.NewProgram(newModel(conn, assets, depth)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}
