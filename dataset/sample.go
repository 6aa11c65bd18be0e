package dataset

// Sample returns a small built-in daily P&L dataset, handy for demos and
// for trying the tool without exporting anything first.
func Sample() string {
	return sampleData
}

const sampleData = `Date,PnL
01/02/2024,250.00
01/03/2024,-120.00
01/04/2024,310.50
01/05/2024,-85.25
01/08/2024,175.00
01/09/2024,-440.00
01/10/2024,95.75
01/11/2024,210.00
01/12/2024,-160.50
01/15/2024,385.00
01/16/2024,-55.00
01/17/2024,120.25
01/18/2024,-230.00
01/19/2024,290.00
01/22/2024,65.50
01/23/2024,-310.75
01/24/2024,430.00
01/25/2024,-95.00
01/26/2024,185.25
01/29/2024,-140.00
01/30/2024,275.50
01/31/2024,150.00
`
