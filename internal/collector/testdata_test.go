package collector

const sampleBundleJSON = `{
  "symbol": "SH600000",
  "date": ["2024-12-30", "2024-12-31", "2025-01-02", "2025-01-03"],
  "close": [10.0, 10.2, 10.1, 10.4],
  "high": [10.1, 10.3, 10.3, 10.5],
  "low": [9.9, 10.0, 10.0, 10.1],
  "volume": [1000000, 1200000, 900000, 1500000],
  "tcap": [1e8, 1e8, 1e8, 1e8],
  "eps": [1.1, 1.1, 1.1, 1.1],
  "epsu": [5.2, 5.2, 5.2, 5.2],
  "roe": [9.5, 9.5, 9.5, 9.5],
  "sector": ["银行", "沪股通"],
  "financials": {
    "date": ["2024-09-30", "2024-12-31", "2025-03-31"],
    "mr": [1e6, 1.3e6, 3e5],
    "np": [2e5, 2.6e5, 7e4],
    "eps": [0.8, 1.1, 0.3],
    "navps": [5.0, 5.2, 5.3],
    "roe": [7.0, 9.5, 2.4]
  }
}`
