package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/dashboard"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	backendURL := flag.String("backend", "http://localhost:8080", "gateway base URL")
	symbol := flag.String("symbol", "", "asset symbol to refresh (default: top-ranked)")
	flag.Parse()

	gateway := dashboard.NewGatewayClient(*backendURL)
	catalog := dashboard.NewCatalog(gateway)
	ctrl := dashboard.NewController(gateway, catalog)

	ctx := context.Background()
	if err := catalog.Load(ctx); err != nil {
		log.Error().Err(err).Msg("catalog load failed")
		fmt.Fprintf(os.Stderr, "Error loading coins: %v\n", err)
		os.Exit(1)
	}

	selected := *symbol
	if selected == "" {
		first, ok := catalog.First()
		if !ok {
			fmt.Fprintln(os.Stderr, "Catalog is empty.")
			os.Exit(1)
		}
		selected = first.Symbol
	}

	ctrl.Select(ctx, selected)
	ctrl.Wait()

	printState(ctrl.State())
}

func printState(st *dashboard.RefreshState) {
	fmt.Printf("%s [%s]\n\n", st.Symbol, st.Phase)

	if st.ChartError != "" {
		fmt.Printf("Chart error: %s\n", st.ChartError)
	} else if n := len(st.ChartPrices); n > 0 {
		fmt.Printf("Price history: %d bars (%s .. %s), last close %g\n",
			n, st.ChartLabels[0], st.ChartLabels[n-1], st.ChartPrices[n-1])
	}

	fmt.Println("\nTechnical Indicators")
	fmt.Printf("  RSI:            %s\n", st.Indicators.RSI)
	fmt.Printf("  MACD:           %s\n", st.Indicators.MACD)
	fmt.Printf("  MACD Signal:    %s\n", st.Indicators.MACDSignal)
	fmt.Printf("  MACD Histogram: %s\n", st.Indicators.MACDHistogram)
	fmt.Printf("  SMA50:          %s\n", st.Indicators.SMA50)
	fmt.Printf("  SMA200:         %s\n", st.Indicators.SMA200)
	fmt.Printf("  Volume 24h:     %s\n", st.Indicators.Volume24h)

	fmt.Println("\nAI Analysis")
	fmt.Printf("  %s\n", st.Analysis)

	fmt.Println("\nNews")
	if st.NewsError != "" {
		fmt.Printf("  %s\n", st.NewsError)
	}
	for _, item := range st.News {
		fmt.Printf("  - %s (%s)\n", item.Title, item.URL)
	}
}
