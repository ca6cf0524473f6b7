package refdata

// airlineTable is the embedded reference table of 2-character IATA airline codes.
var airlineTable = map[string]string{
	"2F": "Frontier Flying Service",
	"3U": "Sichuan Airlines",
	"4C": "LATAM Colombia",
	"4M": "LATAM Paraguay",
	"4N": "Air North",
	"4O": "Interjet",
	"5J": "Cebu Pacific",
	"5T": "Canadian North",
	"5U": "TAG Airlines",
	"5W": "Wizz Air Abu Dhabi",
	"6E": "IndiGo",
	"6W": "Saratov Airlines",
	"8H": "BH Air",
	"8L": "Lucky Air",
	"8U": "Afriqiyah Airways",
	"A3": "Aegean Airlines",
	"A9": "Georgian Airways",
	"AA": "American Airlines",
	"AC": "Air Canada",
	"AD": "Azul Brazilian Airlines",
	"AF": "Air France",
	"AH": "Air Algerie",
	"AI": "Air India",
	"AK": "AirAsia",
	"AM": "Aeromexico",
	"AR": "Aerolineas Argentinas",
	"AS": "Alaska Airlines",
	"AT": "Royal Air Maroc",
	"AV": "Avianca",
	"AY": "Finnair",
	"AZ": "ITA Airways",
	"B2": "Belavia",
	"B6": "JetBlue Airways",
	"BA": "British Airways",
	"BE": "Flybe",
	"BG": "Biman Bangladesh Airlines",
	"BI": "Royal Brunei Airlines",
	"BJ": "Nouvelair",
	"BL": "Jetstar Pacific",
	"BR": "EVA Air",
	"BY": "TUI Airways",
	"CA": "Air China",
	"CI": "China Airlines",
	"CM": "Copa Airlines",
	"CX": "Cathay Pacific",
	"CZ": "China Southern Airlines",
	"D7": "AirAsia X",
	"DD": "Nok Air",
	"DE": "Condor",
	"DG": "Cebgo",
	"DJ": "Virgin Blue",
	"DL": "Delta Air Lines",
	"DP": "Pobeda",
	"DR": "Ruili Airlines",
	"DV": "Scat Airlines",
	"EI": "Aer Lingus",
	"EK": "Emirates",
	"ET": "Ethiopian Airlines",
	"EW": "Eurowings",
	"EY": "Etihad Airways",
	"F3": "Flyadeal",
	"F8": "Flair Airlines",
	"F9": "Frontier Airlines",
	"FB": "Bulgaria Air",
	"FD": "Thai AirAsia",
	"FM": "Shanghai Airlines",
	"FN": "fastjet",
	"FO": "Flybondi",
	"FR": "Ryanair",
	"FZ": "flydubai",
	"G3": "GOL Airlines",
	"G4": "Allegiant Air",
	"G5": "China Express Airlines",
	"G8": "GoAir",
	"G9": "Air Arabia",
	"GA": "Garuda Indonesia",
	"GF": "Gulf Air",
	"GS": "Tianjin Airlines",
	"H1": "Hahn Air",
	"H2": "SKY Airline",
	"HF": "Air Cote d'Ivoire",
	"HO": "Juneyao Airlines",
	"HU": "Hainan Airlines",
	"HY": "Uzbekistan Airways",
	"I5": "AirAsia India",
	"IB": "Iberia",
	"ID": "Batik Air",
	"IU": "Super Air Jet",
	"IX": "Air India Express",
	"J2": "Azerbaijan Airlines",
	"J9": "Jazeera Airways",
	"JA": "JetSMART Chile",
	"JJ": "LATAM Brasil",
	"JL": "Japan Airlines",
	"JQ": "Jetstar Airways",
	"JT": "Lion Air",
	"JU": "Air Serbia",
	"KC": "Air Astana",
	"KE": "Korean Air",
	"KL": "KLM Royal Dutch Airlines",
	"KP": "ASKY Airlines",
	"KQ": "Kenya Airways",
	"KU": "Kuwait Airways",
	"L6": "Mauritania Airlines International",
	"LA": "LATAM Airlines",
	"LH": "Lufthansa",
	"LO": "LOT Polish Airlines",
	"LP": "LATAM Peru",
	"LS": "Jet2.com",
	"LX": "SWISS",
	"ME": "Middle East Airlines",
	"MF": "Xiamen Airlines",
	"MH": "Malaysia Airlines",
	"MJ": "Myway Airlines",
	"MS": "EgyptAir",
	"MT": "Thomas Cook Airlines",
	"MU": "China Eastern Airlines",
	"N3": "Omskavia",
	"N4": "Nordwind Airlines",
	"NH": "All Nippon Airways",
	"NI": "Portugalia",
	"NK": "Spirit Airlines",
	"NM": "Mount Cook Airline",
	"NZ": "Air New Zealand",
	"OD": "Batik Air Malaysia",
	"OK": "Czech Airlines",
	"OS": "Austrian Airlines",
	"OU": "Croatia Airlines",
	"OZ": "Asiana Airlines",
	"P0": "Paranair",
	"PC": "Pegasus Airlines",
	"PD": "Porter Airlines",
	"PG": "Bangkok Airways",
	"PK": "Pakistan International Airlines",
	"PN": "West Air",
	"PR": "Philippine Airlines",
	"PZ": "LATAM Paraguay",
	"QC": "Camair-Co",
	"QF": "Qantas",
	"QG": "Citilink",
	"QH": "Bamboo Airways",
	"QJ": "Jet Airways",
	"QP": "Akasa Air",
	"QR": "Qatar Airways",
	"QZ": "Indonesia AirAsia",
	"RA": "Nepal Airlines",
	"RJ": "Royal Jordanian",
	"RO": "Tarom",
	"S7": "S7 Airlines",
	"SA": "South African Airways",
	"SC": "Shandong Airlines",
	"SG": "SpiceJet",
	"SK": "SAS Scandinavian Airlines",
	"SL": "Thai Lion Air",
	"SN": "Brussels Airlines",
	"SQ": "Singapore Airlines",
	"SU": "Aeroflot",
	"SV": "Saudia",
	"TA": "TACA",
	"TC": "Air Tanzania",
	"TE": "FlyPelican",
	"TG": "Thai Airways",
	"TK": "Turkish Airlines",
	"TO": "Transavia",
	"TP": "TAP Air Portugal",
	"TR": "Scoot",
	"TS": "Air Transat",
	"TT": "Tiger Airways Australia",
	"TU": "Tunisair",
	"U2": "easyJet",
	"U6": "Ural Airlines",
	"UA": "United Airlines",
	"UG": "TunisAir Express",
	"UK": "Vistara",
	"UL": "SriLankan Airlines",
	"VA": "Virgin Australia",
	"VB": "VivaAerobus",
	"VF": "FlyViet",
	"VJ": "VietJet Air",
	"VN": "Vietnam Airlines",
	"VR": "TACV",
	"VY": "Vueling",
	"VZ": "Thai Vietjet Air",
	"W3": "Arik Air",
	"W4": "LC Peru",
	"W6": "Wizz Air",
	"W9": "Wizz Air UK",
	"WC": "Avianca Costa Rica",
	"WJ": "JetSMART Argentina",
	"WN": "Southwest Airlines",
	"WS": "WestJet",
	"WX": "CityJet",
	"WY": "Oman Air",
	"X3": "TUI fly",
	"XL": "LATAM Ecuador",
	"XQ": "SunExpress",
	"XT": "Indonesia AirAsia X",
	"XY": "flynas",
	"Y4": "Volaris",
	"YC": "Yamal Airlines",
	"Z2": "Philippines AirAsia",
	"ZH": "Shenzhen Airlines",
	"ZL": "Regional Express",
}
