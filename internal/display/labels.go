package display

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	labelPlayer        = "Player"
	labelAverage       = "3-dart average"
	labelFirst9        = "First 9 average"
	labelCheckout      = "Checkout percentage"
	labelDoubles       = "Doubles hit/thrown"
	labelHighestScore  = "Highest score"
	labelHighestFinish = "Highest finish"
	label180           = "180s"
	label140           = "140+"
	label100           = "100+"
	label80            = "80+"
	labelBestLeg       = "Best leg (darts)"
	labelWorstLeg      = "Worst leg (darts)"
	labelLegs          = "Legs won"
	labelDarts         = "Darts thrown"
	labelMatches       = "Matches"
	labelTopFinishes   = "Top finishes"
	labelAbove100      = "Finishes above 100"
	labelWinner        = "Winner"
)

var dutch = map[string]string{
	labelPlayer:        "Speler",
	labelAverage:       "3-darts gemiddelde",
	labelFirst9:        "Eerste 9 gemiddelde",
	labelCheckout:      "Uitgooipercentage",
	labelDoubles:       "Dubbels raak/gegooid",
	labelHighestScore:  "Hoogste score",
	labelHighestFinish: "Hoogste finish",
	labelBestLeg:       "Beste leg (darts)",
	labelWorstLeg:      "Slechtste leg (darts)",
	labelLegs:          "Legs gewonnen",
	labelDarts:         "Darts gegooid",
	labelMatches:       "Wedstrijden",
	labelTopFinishes:   "Top finishes",
	labelAbove100:      "Finishes boven 100",
	labelWinner:        "Winnaar",
}

func init() {
	for key, msg := range dutch {
		if err := message.SetString(language.Dutch, key, msg); err != nil {
			panic(fmt.Sprintf("display: register dutch label %q: %v", key, err))
		}
	}
}
