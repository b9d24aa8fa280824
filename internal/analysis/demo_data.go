package analysis

// Demo dataset for the three covered entities. Values are illustrative
// snapshots, not live market data.

func demoProfiles() map[string]*Profile {
	return map[string]*Profile{
		"apple": {
			Entity:         "apple",
			Thesis:         "Apple's strong brand and integrated ecosystem drive long-term growth and customer loyalty.",
			BaseConfidence: 95,
			Facts: map[string]FactTable{
				CategoryValuationMetrics: {
					"Sector":         {Value: "Technology", Definition: "The sector the company operates in."},
					"Current Price":  {Value: 204.23, Unit: "$", Definition: "The latest trading price of the company's stock."},
					"Market Cap":     {Value: 3.00, Unit: "T", Definition: "The total market value of a company's outstanding shares."},
					"P/E Ratio":      {Value: 31.38, Definition: "Price-to-Earnings Ratio."},
					"Dividend Yield": {Value: 0.53, Unit: "%", Definition: "Dividend yield as a percent."},
					"52 Week High":   {Value: 260.10, Unit: "$", Definition: "52 week high price."},
					"52 Week Low":    {Value: 169.21, Unit: "$", Definition: "52 week low price."},
				},
				CategoryFinancialPerformance: {
					"Revenue":                     {Value: 394.33, Unit: "B", Definition: "Total revenue."},
					"Net Income":                  {Value: 99.80, Unit: "B", Definition: "Net profit."},
					"EPS":                         {Value: 6.11, Unit: "$", Definition: "Earnings per share."},
					"Operating Margin":            {Value: 29.8, Unit: "%", Definition: "Operating margin."},
					"Free Cash Flow":              {Value: 111.44, Unit: "B", Definition: "Free cash flow."},
					"Total Return (Trailing 12M)": {Value: -5.64, Unit: "%", Definition: "Total return last 12 months."},
					"Total Return (5 Years)":      {Value: 128.71, Unit: "%", Definition: "Total return last 5 years."},
					"Current Ratio":               {Value: 0.80, Definition: "Current ratio."},
				},
				CategoryCompetitivePosition: {
					"Market Share":    {Value: 23, Unit: "%", Definition: "Estimated global market share."},
					"Key Competitors": {Value: "Samsung, Huawei", Definition: "Major competitors."},
					"Moat Strength":   {Value: 9, Unit: "/10", Definition: "Competitive moat strength."},
					"Brand Value":     {Value: 516, Unit: "B", Definition: "Estimated brand value."},
				},
				CategoryRiskFactors: {
					"Regulatory Risk":   {Value: 7, Unit: "/10", Definition: "Risk from regulations."},
					"Supply Chain Risk": {Value: 6, Unit: "/10", Definition: "Risk from supply chain disruptions."},
					"Market Volatility": {Value: 4, Unit: "/10", Definition: "Exposure to market swings."},
					"Litigation Risk":   {Value: 5, Unit: "/10", Definition: "Risk from lawsuits."},
				},
				CategoryGrowthDrivers: {
					"R&D Spend":        {Value: 27.67, Unit: "B", Definition: "Annual R&D expenditure."},
					"New Markets":      {Value: 3, Definition: "Number of new markets entered."},
					"Product Pipeline": {Value: 5, Definition: "Major products in pipeline."},
					"User Growth":      {Value: 8, Unit: "%", Definition: "Annual user growth."},
				},
				CategoryMacroContext: {
					"GDP Exposure":              {Value: 40, Unit: "%", Definition: "Revenue from international markets."},
					"FX Sensitivity":            {Value: 2, Unit: "/10", Definition: "Sensitivity to currency changes."},
					"Interest Rate Sensitivity": {Value: 3, Unit: "/10", Definition: "Impact of interest rates."},
					"Inflation Impact":          {Value: 4, Unit: "/10", Definition: "Impact of inflation."},
				},
				CategoryESGFactors: {
					"Carbon Footprint":           {Value: 18, Unit: "MT", Definition: "Annual CO2 emissions (millions of tons)."},
					"Board Diversity":            {Value: 45, Unit: "%", Definition: "Percent of diverse board members."},
					"ESG Rating":                 {Value: "AA", Definition: "Third-party ESG rating."},
					"Sustainability Initiatives": {Value: 12, Definition: "Number of major initiatives."},
				},
				CategoryManagementQuality: {
					"CEO Tenure":        {Value: 13, Unit: "years", Definition: "Years current CEO has served."},
					"Management Score":  {Value: 9, Unit: "/10", Definition: "Internal management quality score."},
					"Insider Ownership": {Value: 0.07, Unit: "%", Definition: "Percent of shares owned by insiders."},
					"Succession Plan":   {Value: "Yes", Definition: "Is there a clear succession plan?"},
				},
				CategoryPortfolioRecommendation: {
					"Portfolio Fit":        {Value: "Core Growth", Definition: "Suggested portfolio role."},
					"Risk Level":           {Value: "Medium", Definition: "Risk assessment."},
					"Suggested Allocation": {Value: 8, Unit: "%", Definition: "Suggested portfolio allocation."},
					"Investment Horizon":   {Value: "Long-term", Definition: "Recommended holding period."},
				},
			},
		},
		"meta": {
			Entity:         "meta",
			Thesis:         "Meta's focus on social platforms and the metaverse positions it for future digital growth.",
			BaseConfidence: 90,
			Facts: map[string]FactTable{
				CategoryValuationMetrics: {
					"Sector":         {Value: "Communication Services", Definition: "The sector the company operates in."},
					"Current Price":  {Value: 698.00, Unit: "$", Definition: "The latest trading price of the company's stock."},
					"Market Cap":     {Value: 1.72, Unit: "T", Definition: "The total market value of a company's outstanding shares."},
					"P/E Ratio":      {Value: 28.66, Definition: "Price-to-Earnings Ratio."},
					"Dividend Yield": {Value: 0.30, Unit: "%", Definition: "Dividend yield as a percent."},
					"52 Week High":   {Value: 740.91, Unit: "$", Definition: "52 week high price."},
					"52 Week Low":    {Value: 442.65, Unit: "$", Definition: "52 week low price."},
				},
				CategoryFinancialPerformance: {
					"Revenue":                     {Value: 134.90, Unit: "B", Definition: "Total revenue."},
					"Net Income":                  {Value: 39.10, Unit: "B", Definition: "Net profit."},
					"EPS":                         {Value: 14.87, Unit: "$", Definition: "Earnings per share."},
					"Operating Margin":            {Value: 40.1, Unit: "%", Definition: "Operating margin."},
					"Free Cash Flow":              {Value: 44.00, Unit: "B", Definition: "Free cash flow."},
					"Total Return (Trailing 12M)": {Value: 41.69, Unit: "%", Definition: "Total return last 12 months."},
					"Total Return (5 Years)":      {Value: 234.33, Unit: "%", Definition: "Total return last 5 years."},
					"Current Ratio":               {Value: 2.66, Definition: "Current ratio."},
				},
				CategoryCompetitivePosition: {
					"Market Share":    {Value: 62, Unit: "%", Definition: "Share of global social media users."},
					"Key Competitors": {Value: "TikTok, Snapchat", Definition: "Major competitors."},
					"Moat Strength":   {Value: 8, Unit: "/10", Definition: "Competitive moat strength."},
					"Brand Value":     {Value: 101, Unit: "B", Definition: "Estimated brand value."},
				},
				CategoryRiskFactors: {
					"Regulatory Risk":   {Value: 9, Unit: "/10", Definition: "Risk from regulations."},
					"Supply Chain Risk": {Value: 2, Unit: "/10", Definition: "Risk from supply chain disruptions."},
					"Market Volatility": {Value: 7, Unit: "/10", Definition: "Exposure to market swings."},
					"Litigation Risk":   {Value: 8, Unit: "/10", Definition: "Risk from lawsuits."},
				},
				CategoryGrowthDrivers: {
					"R&D Spend":        {Value: 35.34, Unit: "B", Definition: "Annual R&D expenditure."},
					"New Markets":      {Value: 5, Definition: "Number of new markets entered."},
					"Product Pipeline": {Value: 7, Definition: "Major products in pipeline."},
					"User Growth":      {Value: 12, Unit: "%", Definition: "Annual user growth."},
				},
				CategoryMacroContext: {
					"GDP Exposure":              {Value: 55, Unit: "%", Definition: "Revenue from international markets."},
					"FX Sensitivity":            {Value: 4, Unit: "/10", Definition: "Sensitivity to currency changes."},
					"Interest Rate Sensitivity": {Value: 2, Unit: "/10", Definition: "Impact of interest rates."},
					"Inflation Impact":          {Value: 5, Unit: "/10", Definition: "Impact of inflation."},
				},
				CategoryESGFactors: {
					"Carbon Footprint":           {Value: 10, Unit: "MT", Definition: "Annual CO2 emissions (millions of tons)."},
					"Board Diversity":            {Value: 38, Unit: "%", Definition: "Percent of diverse board members."},
					"ESG Rating":                 {Value: "A", Definition: "Third-party ESG rating."},
					"Sustainability Initiatives": {Value: 8, Definition: "Number of major initiatives."},
				},
				CategoryManagementQuality: {
					"CEO Tenure":        {Value: 19, Unit: "years", Definition: "Years current CEO has served."},
					"Management Score":  {Value: 8, Unit: "/10", Definition: "Internal management quality score."},
					"Insider Ownership": {Value: 13.2, Unit: "%", Definition: "Percent of shares owned by insiders."},
					"Succession Plan":   {Value: "No", Definition: "Is there a clear succession plan?"},
				},
				CategoryPortfolioRecommendation: {
					"Portfolio Fit":        {Value: "Growth", Definition: "Suggested portfolio role."},
					"Risk Level":           {Value: "High", Definition: "Risk assessment."},
					"Suggested Allocation": {Value: 5, Unit: "%", Definition: "Suggested portfolio allocation."},
					"Investment Horizon":   {Value: "Long-term", Definition: "Recommended holding period."},
				},
			},
		},
		"microsoft": {
			Entity:         "microsoft",
			Thesis:         "Microsoft's cloud leadership and diversified business model support consistent growth.",
			BaseConfidence: 97,
			Facts: map[string]FactTable{
				CategoryValuationMetrics: {
					"Sector":         {Value: "Technology", Definition: "The sector the company operates in."},
					"Current Price":  {Value: 446.25, Unit: "$", Definition: "The latest trading price of the company's stock."},
					"Market Cap":     {Value: 3.33, Unit: "T", Definition: "The total market value of a company's outstanding shares."},
					"P/E Ratio":      {Value: 36.74, Definition: "Price-to-Earnings Ratio."},
					"Dividend Yield": {Value: 0.74, Unit: "%", Definition: "Dividend yield as a percent."},
					"52 Week High":   {Value: 456.38, Unit: "$", Definition: "52 week high price."},
					"52 Week Low":    {Value: 308.14, Unit: "$", Definition: "52 week low price."},
				},
				CategoryFinancialPerformance: {
					"Revenue":                     {Value: 211.92, Unit: "B", Definition: "Total revenue."},
					"Net Income":                  {Value: 72.36, Unit: "B", Definition: "Net profit."},
					"EPS":                         {Value: 9.65, Unit: "$", Definition: "Earnings per share."},
					"Operating Margin":            {Value: 45.6, Unit: "%", Definition: "Operating margin."},
					"Free Cash Flow":              {Value: 65.15, Unit: "B", Definition: "Free cash flow."},
					"Total Return (Trailing 12M)": {Value: 36.44, Unit: "%", Definition: "Total return last 12 months."},
					"Total Return (5 Years)":      {Value: 216.52, Unit: "%", Definition: "Total return last 5 years."},
					"Current Ratio":               {Value: 1.90, Definition: "Current ratio."},
				},
				CategoryCompetitivePosition: {
					"Market Share":    {Value: 16, Unit: "%", Definition: "Share of global OS market."},
					"Key Competitors": {Value: "Google, Amazon", Definition: "Major competitors."},
					"Moat Strength":   {Value: 10, Unit: "/10", Definition: "Competitive moat strength."},
					"Brand Value":     {Value: 340, Unit: "B", Definition: "Estimated brand value."},
				},
				CategoryRiskFactors: {
					"Regulatory Risk":   {Value: 8, Unit: "/10", Definition: "Risk from regulations."},
					"Supply Chain Risk": {Value: 3, Unit: "/10", Definition: "Risk from supply chain disruptions."},
					"Market Volatility": {Value: 5, Unit: "/10", Definition: "Exposure to market swings."},
					"Litigation Risk":   {Value: 6, Unit: "/10", Definition: "Risk from lawsuits."},
				},
				CategoryGrowthDrivers: {
					"R&D Spend":        {Value: 26.6, Unit: "B", Definition: "Annual R&D expenditure."},
					"New Markets":      {Value: 2, Definition: "Number of new markets entered."},
					"Product Pipeline": {Value: 6, Definition: "Major products in pipeline."},
					"User Growth":      {Value: 5, Unit: "%", Definition: "Annual user growth."},
				},
				CategoryMacroContext: {
					"GDP Exposure":              {Value: 60, Unit: "%", Definition: "Revenue from international markets."},
					"FX Sensitivity":            {Value: 3, Unit: "/10", Definition: "Sensitivity to currency changes."},
					"Interest Rate Sensitivity": {Value: 4, Unit: "/10", Definition: "Impact of interest rates."},
					"Inflation Impact":          {Value: 3, Unit: "/10", Definition: "Impact of inflation."},
				},
				CategoryESGFactors: {
					"Carbon Footprint":           {Value: 14, Unit: "MT", Definition: "Annual CO2 emissions (millions of tons)."},
					"Board Diversity":            {Value: 50, Unit: "%", Definition: "Percent of diverse board members."},
					"ESG Rating":                 {Value: "AAA", Definition: "Third-party ESG rating."},
					"Sustainability Initiatives": {Value: 15, Definition: "Number of major initiatives."},
				},
				CategoryManagementQuality: {
					"CEO Tenure":        {Value: 10, Unit: "years", Definition: "Years current CEO has served."},
					"Management Score":  {Value: 10, Unit: "/10", Definition: "Internal management quality score."},
					"Insider Ownership": {Value: 0.02, Unit: "%", Definition: "Percent of shares owned by insiders."},
					"Succession Plan":   {Value: "Yes", Definition: "Is there a clear succession plan?"},
				},
				CategoryPortfolioRecommendation: {
					"Portfolio Fit":        {Value: "Defensive Growth", Definition: "Suggested portfolio role."},
					"Risk Level":           {Value: "Low", Definition: "Risk assessment."},
					"Suggested Allocation": {Value: 10, Unit: "%", Definition: "Suggested portfolio allocation."},
					"Investment Horizon":   {Value: "Long-term", Definition: "Recommended holding period."},
				},
			},
		},
	}
}

func demoConclusions() map[string]string {
	return map[string]string{
		CategoryInvestmentThesis: "All three companies present compelling investment theses, but Apple's unmatched brand loyalty and integrated ecosystem provide a durable competitive advantage. " +
			"Microsoft's cloud leadership and enterprise focus position it for sustained growth, while Meta's pivot to the metaverse is bold but carries higher execution risk. " +
			"Investors should weigh the stability of Apple and Microsoft against the higher potential upside, and greater volatility, of Meta.",
		CategoryValuationMetrics: "Apple and Microsoft command the largest market capitalizations in the sector, reflecting their dominant positions and investor confidence. " +
			"Meta, while smaller, trades at a lower P/E ratio, suggesting the market is pricing in more uncertainty but also potential for multiple expansion. " +
			"Dividend yields remain modest across the board, with all three companies prioritizing reinvestment over payouts.",
		CategoryFinancialPerformance: "Apple leads in both revenue and net income, demonstrating operational excellence and pricing power. " +
			"Microsoft's margins are the highest, driven by its software and cloud businesses, while Meta's recent growth in free cash flow and EPS is notable. " +
			"Total returns over five years have been strong for all, but Meta's recent volatility has impacted its trailing 12-month performance.",
		CategoryCompetitivePosition: "Microsoft's wide moat is underpinned by its enterprise relationships and cloud infrastructure, while Apple's brand value and ecosystem lock-in are unmatched in consumer tech. " +
			"Meta remains the leader in social media market share but faces intensifying competition from emerging platforms. " +
			"All three companies benefit from significant network effects, but their competitive threats differ by segment.",
		CategoryRiskFactors: "Regulatory scrutiny is the most acute for Meta, given its data practices and market dominance in social media. " +
			"Apple and Microsoft face supply chain and macroeconomic risks, but their diversified revenue streams provide resilience. " +
			"Litigation and market volatility are persistent risks, but all three maintain strong balance sheets to weather disruptions.",
		CategoryGrowthDrivers: "Meta's aggressive R&D investment in the metaverse and new markets could yield outsized returns if successful, but execution risk is high. " +
			"Apple's product pipeline and expansion into services continue to drive user growth, while Microsoft leverages cloud and AI to enter new verticals. " +
			"Sustained innovation and global expansion remain critical for all three to maintain their growth trajectories.",
		CategoryMacroContext: "All three companies generate a significant portion of revenue internationally, exposing them to currency and macroeconomic fluctuations. " +
			"Interest rate and inflation sensitivity are moderate, but global economic slowdowns could impact demand for discretionary tech products and services. " +
			"Geopolitical risks and regulatory changes in key markets are important watchpoints for investors.",
		CategoryESGFactors: "Microsoft leads in ESG ratings, reflecting its commitment to sustainability and diversity. " +
			"Apple has made significant strides in reducing its carbon footprint and improving board diversity, while Meta is catching up but still faces reputational challenges. " +
			"Sustainability initiatives and transparent reporting are increasingly important for long-term investors.",
		CategoryManagementQuality: "All three companies are led by experienced CEOs with strong track records. " +
			"Microsoft's management team scores highest on internal assessments, while Apple's succession planning and Meta's founder-led culture are notable. " +
			"Insider ownership is highest at Meta, aligning management with shareholder interests.",
		CategoryPortfolioRecommendation: "Apple and Microsoft are recommended as core growth holdings for diversified portfolios, offering stability and consistent returns. " +
			"Meta is best suited for investors seeking higher growth and willing to accept greater risk. " +
			"Suggested allocations should reflect individual risk tolerance and investment horizon.",
	}
}
