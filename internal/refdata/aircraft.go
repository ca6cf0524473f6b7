package refdata

// aircraftTable maps GDS 3-character equipment codes to display names.
var aircraftTable = map[string]string{
	"789": "Boeing 787-9", "788": "Boeing 787-8", "78X": "Boeing 787-10",
	"77W": "Boeing 777-300ER", "772": "Boeing 777-200", "773": "Boeing 777-300",
	"744": "Boeing 747-400", "748": "Boeing 747-8",
	"333": "Airbus A330-300", "332": "Airbus A330-200", "339": "Airbus A330-900",
	"359": "Airbus A350-900", "351": "Airbus A350-1000", "388": "Airbus A380-800",
	"320": "Airbus A320", "321": "Airbus A321", "319": "Airbus A319",
	"32N": "Airbus A320neo", "32Q": "Airbus A321neo",
	"738": "Boeing 737-800", "73H": "Boeing 737-800", "7M8": "Boeing 737 MAX 8",
	"E90": "Embraer E190", "E75": "Embraer E175",
	"AT7": "ATR 72", "AT4": "ATR 42",
	"CR9": "CRJ-900", "CR7": "CRJ-700",
	"DH4": "De Havilland Q400",
}
