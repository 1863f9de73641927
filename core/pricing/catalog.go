package pricing

// catalog is the per-kg price list in VND, in display order.
var catalog = []Row{
	{Composition: "CVC 65% Cotton 35% Polyester", BasicJersey: 145308, Printing: 154746, FleeceBrushed: 168540},
	{Composition: "CVC 65% Cotton 35% Polyester (BCI Cotton)", BasicJersey: 154977, Printing: 165170, FleeceBrushed: 180068},
	{Composition: "CVC 65% Cotton 35% Polyester (Recycled Polyester)", BasicJersey: 152109, Printing: 162273, FleeceBrushed: 175341},
	{Composition: "100% Recycled Poly (rPET)", BasicJersey: 147973, Printing: 155233, FleeceBrushed: 163945},
	{Composition: "CVC 60% Cotton 35% Polyester 5% Spandex", BasicJersey: 174377, Printing: 183089, FleeceBrushed: 185267},
	{Composition: "CVC 60% Cotton 35% Polyester 5% Spandex (BCI Cotton)", BasicJersey: 185094, Printing: 194503, FleeceBrushed: 196856},
	{Composition: "CVC 60% Cotton 35% Polyester 5% Spandex (Recycled Polyester)", BasicJersey: 181904, Printing: 190616, FleeceBrushed: 192068},
	{Composition: "95% Cotton 5% Spandex", BasicJersey: 175140, Printing: 184578, FleeceBrushed: 186030},
	{Composition: "95% Cotton 5% Spandex (BCI Cotton)", BasicJersey: 188599, Printing: 197311, FleeceBrushed: 199634},
	{Composition: "90% Polyester 10% Spandex", BasicJersey: 186277, Printing: 194989, FleeceBrushed: 196441},
	{Composition: "90% Polyester 10% Spandex (Recycled Polyester)", BasicJersey: 196918, Printing: 205630, FleeceBrushed: 207082},
	{Composition: "90% Cotton 10% Spandex", BasicJersey: 188237, Printing: 196949, FleeceBrushed: 198401},
	{Composition: "90% Cotton 10% Spandex (BCI Cotton)", BasicJersey: 200682, Printing: 209394, FleeceBrushed: 211717},
	{Composition: "CVC 60% Cotton 40% Polyester", BasicJersey: 145200, Printing: 155364, FleeceBrushed: 168432},
	{Composition: "CVC 60% Cotton 40% Polyester (BCI Cotton)", BasicJersey: 154581, Printing: 164628, FleeceBrushed: 179671},
	{Composition: "CVC 60% Cotton 40% Polyester (Recycled Polyester)", BasicJersey: 152349, Printing: 162513, FleeceBrushed: 175581},
	{Composition: "100% Cotton", BasicJersey: 155509, Printing: 164947, FleeceBrushed: 166399},
	{Composition: "100% Cotton (BCI Cotton)", BasicJersey: 167949, Printing: 178142, FleeceBrushed: 179711},
	{Composition: "100% Polyester", BasicJersey: 131551, Printing: 142441, FleeceBrushed: 149701},
	{Composition: "TC 65% Polyester 35% Cotton", BasicJersey: 141751, Printing: 151189, FleeceBrushed: 164983},
	{Composition: "TC 65% Polyester 35% Cotton (BCI Cotton)", BasicJersey: 149459, Printing: 159652, FleeceBrushed: 174550},
	{Composition: "TC 65% Polyester 35% Cotton (Recycled Polyester)", BasicJersey: 150647, Printing: 160085, FleeceBrushed: 173879},
	{Composition: "80% Cotton 20% Polyester", BasicJersey: 145635, Printing: 155073, FleeceBrushed: 168867},
	{Composition: "80% Cotton 20% Polyester (BCI Cotton)", BasicJersey: 156168, Printing: 166362, FleeceBrushed: 181259},
	{Composition: "80% Cotton 20% Polyester (Recycled Polyester)", BasicJersey: 151388, Printing: 160826, FleeceBrushed: 174620},
	{Composition: "75% Cotton 25% Polyester", BasicJersey: 145526, Printing: 154964, FleeceBrushed: 168758},
	{Composition: "75% Cotton 25% Polyester (BCI Cotton)", BasicJersey: 155772, Printing: 165965, FleeceBrushed: 180862},
	{Composition: "75% Cotton 25% Polyester (Recycled Polyester)", BasicJersey: 151628, Printing: 161066, FleeceBrushed: 174860},
}
