package refdata

// Airport describes one IATA airport: display name and IANA timezone.
// An empty TzName means the timezone is unknown; offset math falls back to UTC.
type Airport struct {
	Name   string
	TzName string
}

// airportTable is the embedded reference table of IATA airport codes.
var airportTable = map[string]Airport{
	"AAE": {Name: "Annaba", TzName: "Africa/Algiers"},
	"ABJ": {Name: "Abidjan", TzName: "Africa/Abidjan"},
	"ABQ": {Name: "Albuquerque", TzName: "America/Denver"},
	"ABV": {Name: "Abuja", TzName: "Africa/Lagos"},
	"ABX": {Name: "Albury", TzName: "Australia/Sydney"},
	"ACA": {Name: "Acapulco", TzName: "America/Mexico_City"},
	"ACC": {Name: "Accra Kotoka", TzName: "Africa/Accra"},
	"ACE": {Name: "Lanzarote", TzName: ""},
	"ADA": {Name: "Adana", TzName: "Europe/Istanbul"},
	"ADB": {Name: "Izmir Adnan Menderes", TzName: "Europe/Istanbul"},
	"ADD": {Name: "Addis Ababa", TzName: "Africa/Addis_Ababa"},
	"ADL": {Name: "Adelaide", TzName: "Australia/Adelaide"},
	"ADZ": {Name: "San Andres", TzName: "America/Bogota"},
	"AEP": {Name: "Buenos Aires Aeroparque", TzName: "America/Argentina/Buenos_Aires"},
	"AGA": {Name: "Agadir", TzName: "Africa/Casablanca"},
	"AGP": {Name: "Malaga", TzName: "Europe/Madrid"},
	"AGR": {Name: "Agra", TzName: "Asia/Kolkata"},
	"AHB": {Name: "Abha", TzName: "Asia/Riyadh"},
	"AJF": {Name: "Al Jouf", TzName: "Asia/Riyadh"},
	"AJL": {Name: "Aizawl", TzName: "Asia/Kolkata"},
	"AJU": {Name: "Aracaju", TzName: "America/Maceio"},
	"AKL": {Name: "Auckland", TzName: "Pacific/Auckland"},
	"ALA": {Name: "Almaty", TzName: "Asia/Almaty"},
	"ALB": {Name: "Albany", TzName: "America/New_York"},
	"ALC": {Name: "Alicante", TzName: "Europe/Madrid"},
	"ALG": {Name: "Algiers", TzName: "Africa/Algiers"},
	"AMD": {Name: "Ahmedabad", TzName: "Asia/Kolkata"},
	"AMM": {Name: "Amman Queen Alia", TzName: "Asia/Amman"},
	"AMS": {Name: "Amsterdam Schiphol", TzName: "Europe/Amsterdam"},
	"ANC": {Name: "Anchorage", TzName: "America/Anchorage"},
	"ANF": {Name: "Antofagasta", TzName: "America/Santiago"},
	"ANU": {Name: "Antigua", TzName: "America/Antigua"},
	"APW": {Name: "Apia", TzName: "Pacific/Apia"},
	"ARM": {Name: "Armidale", TzName: "Australia/Sydney"},
	"ARN": {Name: "Stockholm Arlanda", TzName: "Europe/Stockholm"},
	"ASB": {Name: "Ashgabat", TzName: "Asia/Ashgabat"},
	"ASM": {Name: "Asmara", TzName: "Africa/Asmara"},
	"ASP": {Name: "Alice Springs", TzName: "Australia/Darwin"},
	"ASR": {Name: "Kayseri", TzName: "Europe/Istanbul"},
	"ASU": {Name: "Asuncion", TzName: "America/Asuncion"},
	"ASW": {Name: "Aswan", TzName: "Africa/Cairo"},
	"ATH": {Name: "Athens", TzName: "Europe/Athens"},
	"ATL": {Name: "Atlanta Hartsfield-Jackson", TzName: "America/New_York"},
	"ATQ": {Name: "Amritsar", TzName: "Asia/Kolkata"},
	"AUA": {Name: "Aruba", TzName: "America/Aruba"},
	"AUH": {Name: "Abu Dhabi", TzName: "Asia/Dubai"},
	"AUS": {Name: "Austin-Bergstrom", TzName: "America/Chicago"},
	"AVV": {Name: "Avalon Melbourne", TzName: "Australia/Melbourne"},
	"AYT": {Name: "Antalya", TzName: "Europe/Istanbul"},
	"BAH": {Name: "Bahrain", TzName: "Asia/Bahrain"},
	"BAQ": {Name: "Barranquilla", TzName: "America/Bogota"},
	"BBI": {Name: "Bhubaneswar", TzName: "Asia/Kolkata"},
	"BCD": {Name: "Bacolod", TzName: "Asia/Manila"},
	"BCN": {Name: "Barcelona El Prat", TzName: "Europe/Madrid"},
	"BDL": {Name: "Hartford", TzName: "America/New_York"},
	"BDO": {Name: "Bandung", TzName: "Asia/Jakarta"},
	"BDQ": {Name: "Vadodara", TzName: "Asia/Kolkata"},
	"BEG": {Name: "Belgrade", TzName: "Europe/Belgrade"},
	"BEL": {Name: "Belem", TzName: "America/Belem"},
	"BEN": {Name: "Benghazi", TzName: "Africa/Tripoli"},
	"BEP": {Name: "Bellary", TzName: "Asia/Kolkata"},
	"BER": {Name: "Berlin Brandenburg", TzName: "Europe/Berlin"},
	"BEY": {Name: "Beirut", TzName: "Asia/Beirut"},
	"BFS": {Name: "Belfast", TzName: "Europe/Belfast"},
	"BGA": {Name: "Bucaramanga", TzName: "America/Bogota"},
	"BGI": {Name: "Bridgetown Barbados", TzName: "America/Barbados"},
	"BGW": {Name: "Baghdad", TzName: "Asia/Baghdad"},
	"BGY": {Name: "Bergamo Orio al Serio", TzName: "Europe/Rome"},
	"BHE": {Name: "Blenheim", TzName: "Pacific/Auckland"},
	"BHJ": {Name: "Bhuj", TzName: "Asia/Kolkata"},
	"BHK": {Name: "Bukhara", TzName: "Asia/Samarkand"},
	"BHO": {Name: "Bhopal", TzName: "Asia/Kolkata"},
	"BHX": {Name: "Birmingham UK", TzName: "Europe/London"},
	"BHZ": {Name: "Belo Horizonte Confins", TzName: "America/Sao_Paulo"},
	"BIO": {Name: "Bilbao", TzName: "Europe/Madrid"},
	"BIR": {Name: "Biratnagar", TzName: "Asia/Kathmandu"},
	"BJL": {Name: "Banjul", TzName: "Africa/Banjul"},
	"BJM": {Name: "Bujumbura", TzName: "Africa/Bujumbura"},
	"BJV": {Name: "Bodrum", TzName: "Europe/Istanbul"},
	"BJX": {Name: "Leon/Guanajuato", TzName: "America/Mexico_City"},
	"BKI": {Name: "Kota Kinabalu", TzName: "Asia/Kuala_Lumpur"},
	"BKK": {Name: "Bangkok Suvarnabhumi", TzName: "Asia/Bangkok"},
	"BLA": {Name: "Barcelona Venezuela", TzName: "America/Caracas"},
	"BLQ": {Name: "Bologna", TzName: "Europe/Rome"},
	"BLR": {Name: "Bengaluru", TzName: "Asia/Kolkata"},
	"BLZ": {Name: "Blantyre", TzName: "Africa/Blantyre"},
	"BMV": {Name: "Buon Ma Thuot", TzName: "Asia/Ho_Chi_Minh"},
	"BNA": {Name: "Nashville", TzName: "America/Chicago"},
	"BNE": {Name: "Brisbane", TzName: "Australia/Brisbane"},
	"BNK": {Name: "Ballina Byron", TzName: "Australia/Sydney"},
	"BOD": {Name: "Bordeaux", TzName: "Europe/Paris"},
	"BOG": {Name: "Bogota El Dorado", TzName: "America/Bogota"},
	"BOI": {Name: "Boise", TzName: "America/Boise"},
	"BOM": {Name: "Mumbai", TzName: "Asia/Kolkata"},
	"BON": {Name: "Bonaire", TzName: "America/Kralendijk"},
	"BOS": {Name: "Boston Logan", TzName: "America/New_York"},
	"BPN": {Name: "Balikpapan", TzName: "Asia/Makassar"},
	"BRC": {Name: "Bariloche", TzName: "America/Argentina/Salta"},
	"BRE": {Name: "Bremen", TzName: "Europe/Berlin"},
	"BRI": {Name: "Bari", TzName: "Europe/Rome"},
	"BRU": {Name: "Brussels", TzName: "Europe/Brussels"},
	"BSB": {Name: "Brasilia", TzName: "America/Sao_Paulo"},
	"BSK": {Name: "Biskra", TzName: "Africa/Algiers"},
	"BSL": {Name: "Basel-Mulhouse", TzName: "Europe/Paris"},
	"BSR": {Name: "Basra", TzName: "Asia/Baghdad"},
	"BTH": {Name: "Batam", TzName: "Asia/Jakarta"},
	"BTS": {Name: "Bratislava", TzName: "Europe/Bratislava"},
	"BTV": {Name: "Burlington", TzName: "America/New_York"},
	"BUD": {Name: "Budapest", TzName: "Europe/Budapest"},
	"BUF": {Name: "Buffalo", TzName: "America/New_York"},
	"BUR": {Name: "Burbank", TzName: "America/Los_Angeles"},
	"BWA": {Name: "Bhairahawa", TzName: "Asia/Kathmandu"},
	"BWI": {Name: "Baltimore/Washington", TzName: "America/New_York"},
	"BWN": {Name: "Bandar Seri Begawan", TzName: "Asia/Brunei"},
	"BZE": {Name: "Belize City", TzName: "America/Belize"},
	"CAG": {Name: "Cagliari", TzName: "Europe/Rome"},
	"CAI": {Name: "Cairo", TzName: "Africa/Cairo"},
	"CAK": {Name: "Akron-Canton", TzName: "America/New_York"},
	"CAN": {Name: "Guangzhou Baiyun", TzName: "Asia/Shanghai"},
	"CAY": {Name: "Cayenne", TzName: "America/Cayenne"},
	"CBB": {Name: "Cochabamba", TzName: "America/La_Paz"},
	"CBD": {Name: "Car Nicobar", TzName: "Asia/Kolkata"},
	"CBO": {Name: "Cotabato", TzName: "Asia/Manila"},
	"CBR": {Name: "Canberra", TzName: "Australia/Sydney"},
	"CCP": {Name: "Concepcion Chile", TzName: "America/Santiago"},
	"CCS": {Name: "Caracas Maiquetia", TzName: "America/Caracas"},
	"CCU": {Name: "Kolkata", TzName: "Asia/Kolkata"},
	"CDG": {Name: "Paris Charles de Gaulle", TzName: "Europe/Paris"},
	"CEB": {Name: "Cebu", TzName: "Asia/Manila"},
	"CEI": {Name: "Chiang Rai", TzName: "Asia/Bangkok"},
	"CFU": {Name: "Corfu", TzName: "Europe/Athens"},
	"CGB": {Name: "Cuiaba", TzName: "America/Cuiaba"},
	"CGH": {Name: "Sao Paulo Congonhas", TzName: "America/Sao_Paulo"},
	"CGK": {Name: "Jakarta Soekarno-Hatta", TzName: "Asia/Jakarta"},
	"CGN": {Name: "Cologne Bonn", TzName: "Europe/Berlin"},
	"CGO": {Name: "Zhengzhou Xinzheng", TzName: "Asia/Shanghai"},
	"CGP": {Name: "Chittagong", TzName: "Asia/Dhaka"},
	"CGQ": {Name: "Changchun Longjia", TzName: "Asia/Shanghai"},
	"CGY": {Name: "Cagayan de Oro", TzName: ""},
	"CHC": {Name: "Christchurch", TzName: "Pacific/Auckland"},
	"CHQ": {Name: "Chania", TzName: "Europe/Athens"},
	"CHS": {Name: "Charleston SC", TzName: "America/New_York"},
	"CJU": {Name: "Jeju", TzName: "Asia/Seoul"},
	"CKG": {Name: "Chongqing Jiangbei", TzName: "Asia/Shanghai"},
	"CLE": {Name: "Cleveland", TzName: ""},
	"CLJ": {Name: "Cluj-Napoca", TzName: "Europe/Bucharest"},
	"CLO": {Name: "Cali", TzName: "America/Bogota"},
	"CLT": {Name: "Charlotte Douglas", TzName: "America/New_York"},
	"CMB": {Name: "Colombo Bandaranaike", TzName: "Asia/Colombo"},
	"CMH": {Name: "Columbus", TzName: "America/New_York"},
	"CMN": {Name: "Casablanca Mohammed V", TzName: "Africa/Casablanca"},
	"CNF": {Name: "Belo Horizonte Tancredo Neves", TzName: "America/Sao_Paulo"},
	"CNS": {Name: "Cairns", TzName: "Australia/Brisbane"},
	"CNX": {Name: "Chiang Mai", TzName: "Asia/Bangkok"},
	"COH": {Name: "Cooch Behar", TzName: "Asia/Kolkata"},
	"COK": {Name: "Kochi", TzName: "Asia/Kolkata"},
	"COO": {Name: "Cotonou", TzName: "Africa/Porto-Novo"},
	"COR": {Name: "Cordoba Argentina", TzName: "America/Argentina/Cordoba"},
	"CPH": {Name: "Copenhagen", TzName: "Europe/Copenhagen"},
	"CPT": {Name: "Cape Town", TzName: "Africa/Johannesburg"},
	"CRK": {Name: "Clark", TzName: "Asia/Manila"},
	"CSX": {Name: "Changsha Huanghua", TzName: "Asia/Shanghai"},
	"CTA": {Name: "Catania", TzName: "Europe/Rome"},
	"CTG": {Name: "Cartagena", TzName: "America/Bogota"},
	"CTS": {Name: "Sapporo New Chitose", TzName: "Asia/Tokyo"},
	"CTU": {Name: "Chengdu Shuangliu", TzName: "Asia/Shanghai"},
	"CUC": {Name: "Cucuta", TzName: "America/Bogota"},
	"CUN": {Name: "Cancun", TzName: "America/Cancun"},
	"CUR": {Name: "Curacao", TzName: "America/Curacao"},
	"CUU": {Name: "Chihuahua", TzName: "America/Chihuahua"},
	"CVG": {Name: "Cincinnati", TzName: "America/New_York"},
	"CWB": {Name: "Curitiba", TzName: "America/Sao_Paulo"},
	"CXB": {Name: "Cox's Bazar", TzName: "Asia/Dhaka"},
	"CXR": {Name: "Nha Trang Cam Ranh", TzName: "Asia/Ho_Chi_Minh"},
	"CZL": {Name: "Constantine", TzName: "Africa/Algiers"},
	"CZM": {Name: "Cozumel", TzName: "America/Cancun"},
	"DAC": {Name: "Dhaka Hazrat Shahjalal", TzName: "Asia/Dhaka"},
	"DAD": {Name: "Da Nang", TzName: "Asia/Ho_Chi_Minh"},
	"DAR": {Name: "Dar es Salaam", TzName: "Africa/Dar_es_Salaam"},
	"DAY": {Name: "Dayton", TzName: "America/New_York"},
	"DBV": {Name: "Dubrovnik", TzName: "Europe/Belgrade"},
	"DCA": {Name: "Washington Reagan", TzName: "America/New_York"},
	"DED": {Name: "Dehradun", TzName: "Asia/Kolkata"},
	"DEL": {Name: "Delhi", TzName: "Asia/Kolkata"},
	"DEN": {Name: "Denver", TzName: "America/Denver"},
	"DFW": {Name: "Dallas Fort Worth", TzName: "America/Chicago"},
	"DIB": {Name: "Dibrugarh", TzName: "Asia/Kolkata"},
	"DJE": {Name: "Djerba", TzName: "Africa/Tunis"},
	"DKR": {Name: "Dakar", TzName: "Africa/Dakar"},
	"DLA": {Name: "Douala", TzName: "Africa/Douala"},
	"DLC": {Name: "Dalian Zhoushuizi", TzName: "Asia/Shanghai"},
	"DLI": {Name: "Dalat", TzName: "Asia/Ho_Chi_Minh"},
	"DLM": {Name: "Dalaman", TzName: "Europe/Istanbul"},
	"DME": {Name: "Moscow Domodedovo", TzName: "Europe/Moscow"},
	"DMK": {Name: "Bangkok Don Mueang", TzName: "Asia/Bangkok"},
	"DMM": {Name: "Dammam King Fahd", TzName: "Asia/Riyadh"},
	"DMU": {Name: "Dimapur", TzName: "Asia/Kolkata"},
	"DOH": {Name: "Doha Hamad", TzName: "Asia/Qatar"},
	"DPS": {Name: "Bali Denpasar", TzName: "Asia/Makassar"},
	"DRS": {Name: "Dresden", TzName: "Europe/Berlin"},
	"DRW": {Name: "Darwin", TzName: "Australia/Darwin"},
	"DSM": {Name: "Des Moines", TzName: "America/Chicago"},
	"DSS": {Name: "Dakar Blaise Diagne", TzName: "Africa/Dakar"},
	"DTW": {Name: "Detroit Metro", TzName: "America/Detroit"},
	"DUB": {Name: "Dublin", TzName: "Europe/Dublin"},
	"DUD": {Name: "Dunedin", TzName: "Pacific/Auckland"},
	"DUR": {Name: "Durban King Shaka", TzName: "Africa/Johannesburg"},
	"DUS": {Name: "Dusseldorf", TzName: "Europe/Berlin"},
	"DVO": {Name: "Davao", TzName: "Asia/Manila"},
	"DXB": {Name: "Dubai International", TzName: "Asia/Dubai"},
	"DYU": {Name: "Dushanbe", TzName: "Asia/Dushanbe"},
	"EBB": {Name: "Entebbe", TzName: "Africa/Kampala"},
	"EBL": {Name: "Erbil", TzName: "Asia/Baghdad"},
	"EDI": {Name: "Edinburgh", TzName: "Europe/London"},
	"ELP": {Name: "El Paso", TzName: "America/Denver"},
	"ELQ": {Name: "Gassim", TzName: "Asia/Riyadh"},
	"ESB": {Name: "Ankara Esenboga", TzName: "Europe/Istanbul"},
	"ESU": {Name: "Essaouira", TzName: "Africa/Casablanca"},
	"EVN": {Name: "Yerevan", TzName: "Asia/Yerevan"},
	"EWR": {Name: "Newark Liberty", TzName: "America/New_York"},
	"EZE": {Name: "Buenos Aires Ezeiza", TzName: "America/Argentina/Buenos_Aires"},
	"FAO": {Name: "Faro", TzName: "Europe/Lisbon"},
	"FAT": {Name: "Fresno", TzName: "America/Los_Angeles"},
	"FCO": {Name: "Rome Fiumicino", TzName: "Europe/Rome"},
	"FEZ": {Name: "Fez", TzName: "Africa/Casablanca"},
	"FIH": {Name: "Kinshasa", TzName: "Africa/Kinshasa"},
	"FLL": {Name: "Fort Lauderdale", TzName: "America/New_York"},
	"FLN": {Name: "Florianopolis", TzName: "America/Sao_Paulo"},
	"FMM": {Name: "Memmingen", TzName: "Europe/Berlin"},
	"FNA": {Name: "Freetown", TzName: "Africa/Freetown"},
	"FNC": {Name: "Funchal Madeira", TzName: "Atlantic/Madeira"},
	"FOC": {Name: "Fuzhou Changle", TzName: "Asia/Shanghai"},
	"FOR": {Name: "Fortaleza", TzName: "America/Fortaleza"},
	"FRA": {Name: "Frankfurt", TzName: "Europe/Berlin"},
	"FRU": {Name: "Bishkek", TzName: "Asia/Bishkek"},
	"FUE": {Name: "Fuerteventura", TzName: ""},
	"FUK": {Name: "Fukuoka", TzName: "Asia/Tokyo"},
	"GAN": {Name: "Gan Island", TzName: "Indian/Maldives"},
	"GAU": {Name: "Guwahati", TzName: "Asia/Kolkata"},
	"GCM": {Name: "Grand Cayman", TzName: "America/Cayman"},
	"GDL": {Name: "Guadalajara", TzName: "America/Mexico_City"},
	"GDN": {Name: "Gdansk", TzName: "Europe/Warsaw"},
	"GEG": {Name: "Spokane", TzName: "America/Los_Angeles"},
	"GEO": {Name: "Georgetown Guyana", TzName: "America/Guyana"},
	"GES": {Name: "General Santos", TzName: "Asia/Manila"},
	"GIG": {Name: "Rio de Janeiro Galeao", TzName: "America/Sao_Paulo"},
	"GIZ": {Name: "Jizan", TzName: "Asia/Riyadh"},
	"GLA": {Name: "Glasgow", TzName: "Europe/London"},
	"GMP": {Name: "Seoul Gimpo", TzName: "Asia/Seoul"},
	"GND": {Name: "Grenada", TzName: "America/Grenada"},
	"GOI": {Name: "Goa", TzName: "Asia/Kolkata"},
	"GOP": {Name: "Gorakhpur", TzName: "Asia/Kolkata"},
	"GOT": {Name: "Gothenburg", TzName: "Europe/Stockholm"},
	"GRJ": {Name: "George South Africa", TzName: "Africa/Johannesburg"},
	"GRR": {Name: "Grand Rapids", TzName: "America/Detroit"},
	"GRU": {Name: "Sao Paulo Guarulhos", TzName: "America/Sao_Paulo"},
	"GSP": {Name: "Greenville SC", TzName: "America/New_York"},
	"GUA": {Name: "Guatemala City", TzName: "America/Guatemala"},
	"GUM": {Name: "Guam", TzName: "Pacific/Guam"},
	"GVA": {Name: "Geneva", TzName: "Europe/Zurich"},
	"GWL": {Name: "Gwalior", TzName: "Asia/Kolkata"},
	"GYD": {Name: "Baku", TzName: "Asia/Baku"},
	"GYE": {Name: "Guayaquil", TzName: "America/Guayaquil"},
	"GYN": {Name: "Goiania", TzName: "America/Sao_Paulo"},
	"GZT": {Name: "Gaziantep", TzName: "Europe/Istanbul"},
	"HAJ": {Name: "Hanover", TzName: "Europe/Berlin"},
	"HAM": {Name: "Hamburg", TzName: "Europe/Berlin"},
	"HAN": {Name: "Hanoi Noi Bai", TzName: "Asia/Ho_Chi_Minh"},
	"HAS": {Name: "Hail", TzName: "Asia/Riyadh"},
	"HAV": {Name: "Havana", TzName: "America/Havana"},
	"HBA": {Name: "Hobart", TzName: "Australia/Hobart"},
	"HBX": {Name: "Hubli", TzName: "Asia/Kolkata"},
	"HDY": {Name: "Hat Yai", TzName: "Asia/Bangkok"},
	"HEH": {Name: "Heho", TzName: "Asia/Yangon"},
	"HEL": {Name: "Helsinki-Vantaa", TzName: "Europe/Helsinki"},
	"HER": {Name: "Heraklion", TzName: "Europe/Athens"},
	"HET": {Name: "Hohhot Baita", TzName: "Asia/Shanghai"},
	"HGA": {Name: "Hargeisa", TzName: "Africa/Mogadishu"},
	"HGH": {Name: "Hangzhou Xiaoshan", TzName: "Asia/Shanghai"},
	"HIJ": {Name: "Hiroshima", TzName: "Asia/Tokyo"},
	"HIR": {Name: "Honiara", TzName: "Pacific/Guadalcanal"},
	"HKG": {Name: "Hong Kong", TzName: "Asia/Hong_Kong"},
	"HKT": {Name: "Phuket", TzName: "Asia/Bangkok"},
	"HMO": {Name: "Hermosillo", TzName: "America/Hermosillo"},
	"HND": {Name: "Tokyo Haneda", TzName: "Asia/Tokyo"},
	"HNL": {Name: "Honolulu", TzName: "Pacific/Honolulu"},
	"HOU": {Name: "Houston Hobby", TzName: "America/Chicago"},
	"HRB": {Name: "Harbin Taiping", TzName: "Asia/Shanghai"},
	"HRE": {Name: "Harare", TzName: "Africa/Harare"},
	"HRG": {Name: "Hurghada", TzName: "Africa/Cairo"},
	"HTI": {Name: "Hamilton Island", TzName: "Australia/Brisbane"},
	"HUI": {Name: "Hue", TzName: "Asia/Ho_Chi_Minh"},
	"HYD": {Name: "Hyderabad", TzName: "Asia/Kolkata"},
	"IAD": {Name: "Washington Dulles", TzName: "America/New_York"},
	"IAH": {Name: "Houston George Bush", TzName: "America/Chicago"},
	"IAS": {Name: "Iasi", TzName: "Europe/Bucharest"},
	"IBZ": {Name: "Ibiza", TzName: "Europe/Madrid"},
	"ICN": {Name: "Seoul Incheon", TzName: "Asia/Seoul"},
	"ICT": {Name: "Wichita", TzName: "America/Chicago"},
	"IDR": {Name: "Indore", TzName: "Asia/Kolkata"},
	"IGR": {Name: "Iguazu", TzName: "America/Argentina/Jujuy"},
	"IKA": {Name: "Tehran Imam Khomeini", TzName: "Asia/Tehran"},
	"ILO": {Name: "Iloilo", TzName: "Asia/Manila"},
	"IMF": {Name: "Imphal", TzName: "Asia/Kolkata"},
	"IND": {Name: "Indianapolis", TzName: "America/Indiana/Indianapolis"},
	"IQQ": {Name: "Iquique", TzName: "America/Santiago"},
	"ISB": {Name: "Islamabad", TzName: "Asia/Karachi"},
	"IST": {Name: "Istanbul", TzName: "Europe/Istanbul"},
	"ISU": {Name: "Sulaymaniyah", TzName: "Asia/Baghdad"},
	"ITM": {Name: "Osaka Itami", TzName: "Asia/Tokyo"},
	"IVC": {Name: "Invercargill", TzName: "Pacific/Auckland"},
	"IXA": {Name: "Agartala", TzName: "Asia/Kolkata"},
	"IXB": {Name: "Bagdogra", TzName: "Asia/Kolkata"},
	"IXC": {Name: "Chandigarh", TzName: "Asia/Kolkata"},
	"IXD": {Name: "Allahabad", TzName: "Asia/Kolkata"},
	"IXE": {Name: "Mangalore", TzName: "Asia/Kolkata"},
	"IXG": {Name: "Belgaum", TzName: "Asia/Kolkata"},
	"IXI": {Name: "Lilabari", TzName: "Asia/Kolkata"},
	"IXJ": {Name: "Jammu", TzName: "Asia/Kolkata"},
	"IXL": {Name: "Leh", TzName: "Asia/Kolkata"},
	"IXM": {Name: "Madurai", TzName: "Asia/Kolkata"},
	"IXR": {Name: "Ranchi", TzName: "Asia/Kolkata"},
	"IXS": {Name: "Silchar", TzName: "Asia/Kolkata"},
	"IXU": {Name: "Aurangabad", TzName: "Asia/Kolkata"},
	"IXV": {Name: "Along", TzName: "Asia/Kolkata"},
	"IXW": {Name: "Jamshedpur", TzName: "Asia/Kolkata"},
	"IXZ": {Name: "Port Blair", TzName: "Asia/Kolkata"},
	"JAI": {Name: "Jaipur", TzName: "Asia/Kolkata"},
	"JAX": {Name: "Jacksonville", TzName: "America/New_York"},
	"JED": {Name: "Jeddah", TzName: "Asia/Riyadh"},
	"JFK": {Name: "New York JFK", TzName: "America/New_York"},
	"JHB": {Name: "Johor Bahru", TzName: "Asia/Kuala_Lumpur"},
	"JIB": {Name: "Djibouti", TzName: "Africa/Djibouti"},
	"JLR": {Name: "Jabalpur", TzName: "Asia/Kolkata"},
	"JNB": {Name: "Johannesburg OR Tambo", TzName: "Africa/Johannesburg"},
	"JOG": {Name: "Yogyakarta", TzName: "Asia/Jakarta"},
	"JRH": {Name: "Jorhat", TzName: "Asia/Kolkata"},
	"JRO": {Name: "Kilimanjaro", TzName: "Africa/Nairobi"},
	"JSR": {Name: "Jessore", TzName: "Asia/Dhaka"},
	"JTR": {Name: "Santorini", TzName: "Europe/Athens"},
	"KAN": {Name: "Kano", TzName: "Africa/Lagos"},
	"KBL": {Name: "Kabul", TzName: "Asia/Kabul"},
	"KBV": {Name: "Krabi", TzName: "Asia/Bangkok"},
	"KCH": {Name: "Kuching", TzName: "Asia/Kuching"},
	"KDM": {Name: "Kaadedhdhoo", TzName: "Indian/Maldives"},
	"KGL": {Name: "Kigali", TzName: "Africa/Kigali"},
	"KGS": {Name: "Kos", TzName: "Europe/Athens"},
	"KHH": {Name: "Kaohsiung", TzName: "Asia/Taipei"},
	"KHI": {Name: "Karachi", TzName: "Asia/Karachi"},
	"KIN": {Name: "Kingston Jamaica", TzName: "America/Jamaica"},
	"KIX": {Name: "Osaka Kansai", TzName: "Asia/Tokyo"},
	"KLO": {Name: "Boracay Kalibo", TzName: "Asia/Manila"},
	"KMG": {Name: "Kunming Changshui", TzName: "Asia/Shanghai"},
	"KOJ": {Name: "Kagoshima", TzName: "Asia/Tokyo"},
	"KOP": {Name: "Nakhon Phanom", TzName: ""},
	"KOS": {Name: "Sihanoukville", TzName: "Asia/Phnom_Penh"},
	"KRK": {Name: "Krakow", TzName: "Europe/Warsaw"},
	"KTM": {Name: "Kathmandu Tribhuvan", TzName: "Asia/Kathmandu"},
	"KTW": {Name: "Katowice", TzName: "Europe/Warsaw"},
	"KUL": {Name: "Kuala Lumpur", TzName: "Asia/Kuala_Lumpur"},
	"KUU": {Name: "Kullu Manali", TzName: "Asia/Kolkata"},
	"KWA": {Name: "Kwajalein", TzName: "Pacific/Kwajalein"},
	"KWI": {Name: "Kuwait", TzName: "Asia/Kuwait"},
	"KWL": {Name: "Guilin Liangjiang", TzName: "Asia/Shanghai"},
	"KYP": {Name: "Kyaukpyu", TzName: ""},
	"LAS": {Name: "Las Vegas", TzName: "America/Los_Angeles"},
	"LAX": {Name: "Los Angeles", TzName: "America/Los_Angeles"},
	"LBV": {Name: "Libreville", TzName: "Africa/Libreville"},
	"LCY": {Name: "London City", TzName: "Europe/London"},
	"LED": {Name: "St Petersburg Pulkovo", TzName: "Europe/Moscow"},
	"LEJ": {Name: "Leipzig", TzName: "Europe/Berlin"},
	"LEX": {Name: "Lexington", TzName: "America/New_York"},
	"LFW": {Name: "Lome", TzName: "Africa/Lome"},
	"LGA": {Name: "New York LaGuardia", TzName: "America/New_York"},
	"LGB": {Name: "Long Beach", TzName: "America/Los_Angeles"},
	"LGK": {Name: "Langkawi", TzName: "Asia/Kuala_Lumpur"},
	"LGW": {Name: "London Gatwick", TzName: "Europe/London"},
	"LHE": {Name: "Lahore", TzName: "Asia/Karachi"},
	"LHR": {Name: "London Heathrow", TzName: "Europe/London"},
	"LHW": {Name: "Lanzhou Zhongchuan", TzName: "Asia/Shanghai"},
	"LIM": {Name: "Lima Jorge Chavez", TzName: "America/Lima"},
	"LIN": {Name: "Milan Linate", TzName: "Europe/Rome"},
	"LIR": {Name: "Liberia Costa Rica", TzName: "America/Costa_Rica"},
	"LIS": {Name: "Lisbon", TzName: "Europe/Lisbon"},
	"LIT": {Name: "Little Rock", TzName: "America/Chicago"},
	"LJU": {Name: "Ljubljana", TzName: "Europe/Ljubljana"},
	"LKO": {Name: "Lucknow", TzName: "Asia/Kolkata"},
	"LOS": {Name: "Lagos Murtala Muhammed", TzName: "Africa/Lagos"},
	"LPA": {Name: "Gran Canaria", TzName: ""},
	"LPB": {Name: "La Paz El Alto", TzName: "America/La_Paz"},
	"LPQ": {Name: "Luang Prabang", TzName: "Asia/Vientiane"},
	"LSC": {Name: "La Serena", TzName: "America/Santiago"},
	"LST": {Name: "Launceston", TzName: "Australia/Hobart"},
	"LTN": {Name: "London Luton", TzName: "Europe/London"},
	"LUN": {Name: "Lusaka", TzName: "Africa/Lusaka"},
	"LXR": {Name: "Luxor", TzName: "Africa/Cairo"},
	"LYS": {Name: "Lyon", TzName: "Europe/Paris"},
	"LYX": {Name: "Larnaca", TzName: "Asia/Nicosia"},
	"MAA": {Name: "Chennai", TzName: "Asia/Kolkata"},
	"MAD": {Name: "Madrid Barajas", TzName: "Europe/Madrid"},
	"MAF": {Name: "Midland-Odessa", TzName: "America/Chicago"},
	"MAH": {Name: "Menorca", TzName: "Europe/Madrid"},
	"MAJ": {Name: "Majuro", TzName: "Pacific/Majuro"},
	"MAN": {Name: "Manchester", TzName: "Europe/London"},
	"MAO": {Name: "Manaus", TzName: "America/Manaus"},
	"MAR": {Name: "Maracaibo", TzName: "America/Caracas"},
	"MBA": {Name: "Mombasa Moi", TzName: "Africa/Nairobi"},
	"MBJ": {Name: "Montego Bay", TzName: "America/Jamaica"},
	"MCI": {Name: "Kansas City", TzName: "America/Chicago"},
	"MCO": {Name: "Orlando", TzName: "America/New_York"},
	"MCT": {Name: "Muscat", TzName: "Asia/Muscat"},
	"MCY": {Name: "Sunshine Coast", TzName: "Australia/Brisbane"},
	"MCZ": {Name: "Maceio", TzName: "America/Maceio"},
	"MDC": {Name: "Manado", TzName: "Asia/Makassar"},
	"MDE": {Name: "Medellin Jose Maria Cordova", TzName: "America/Bogota"},
	"MDL": {Name: "Mandalay", TzName: "Asia/Yangon"},
	"MDW": {Name: "Chicago Midway", TzName: "America/Chicago"},
	"MDZ": {Name: "Mendoza", TzName: "America/Argentina/Mendoza"},
	"MED": {Name: "Madinah", TzName: "Asia/Riyadh"},
	"MEL": {Name: "Melbourne Tullamarine", TzName: "Australia/Melbourne"},
	"MEX": {Name: "Mexico City", TzName: "America/Mexico_City"},
	"MFM": {Name: "Macau", TzName: "Asia/Macau"},
	"MGA": {Name: "Managua", TzName: "America/Managua"},
	"MGQ": {Name: "Mogadishu", TzName: "Africa/Mogadishu"},
	"MHD": {Name: "Mashhad", TzName: "Asia/Tehran"},
	"MIA": {Name: "Miami", TzName: "America/New_York"},
	"MID": {Name: "Merida", TzName: "America/Merida"},
	"MIR": {Name: "Monastir", TzName: "Africa/Tunis"},
	"MJI": {Name: "Mitiga Tripoli", TzName: "Africa/Tripoli"},
	"MJN": {Name: "Majunga", TzName: "Indian/Antananarivo"},
	"MKE": {Name: "Milwaukee", TzName: "America/Chicago"},
	"MKY": {Name: "Mackay", TzName: "Australia/Brisbane"},
	"MLE": {Name: "Male Velana", TzName: "Indian/Maldives"},
	"MLH": {Name: "Mulhouse", TzName: "Europe/Paris"},
	"MNL": {Name: "Manila Ninoy Aquino", TzName: "Asia/Manila"},
	"MPH": {Name: "Caticlan", TzName: "Asia/Manila"},
	"MRS": {Name: "Marseille", TzName: "Europe/Paris"},
	"MRU": {Name: "Mauritius", TzName: "Indian/Mauritius"},
	"MSP": {Name: "Minneapolis-St Paul", TzName: "America/Chicago"},
	"MSY": {Name: "New Orleans", TzName: "America/Chicago"},
	"MTY": {Name: "Monterrey", TzName: "America/Monterrey"},
	"MUC": {Name: "Munich", TzName: "Europe/Berlin"},
	"MUX": {Name: "Multan", TzName: "Asia/Karachi"},
	"MVD": {Name: "Montevideo", TzName: "America/Montevideo"},
	"MXP": {Name: "Milan Malpensa", TzName: "Europe/Rome"},
	"MYR": {Name: "Myrtle Beach", TzName: "America/New_York"},
	"NAG": {Name: "Nagpur", TzName: "Asia/Kolkata"},
	"NAN": {Name: "Nadi Fiji", TzName: "Pacific/Fiji"},
	"NAP": {Name: "Naples", TzName: "Europe/Rome"},
	"NAS": {Name: "Nassau Bahamas", TzName: "America/Nassau"},
	"NAT": {Name: "Natal", TzName: "America/Fortaleza"},
	"NBO": {Name: "Nairobi Jomo Kenyatta", TzName: "Africa/Nairobi"},
	"NCE": {Name: "Nice Cote d'Azur", TzName: "Europe/Paris"},
	"NDR": {Name: "Nador", TzName: "Africa/Casablanca"},
	"NGO": {Name: "Nagoya Chubu", TzName: "Asia/Tokyo"},
	"NKC": {Name: "Nouakchott", TzName: "Africa/Nouakchott"},
	"NKG": {Name: "Nanjing Lukou", TzName: "Asia/Shanghai"},
	"NNG": {Name: "Nanning Wuxu", TzName: "Asia/Shanghai"},
	"NOS": {Name: "Nosy Be", TzName: "Indian/Antananarivo"},
	"NOU": {Name: "Noumea", TzName: "Pacific/Noumea"},
	"NPE": {Name: "Napier", TzName: "Pacific/Auckland"},
	"NPL": {Name: "New Plymouth", TzName: "Pacific/Auckland"},
	"NQZ": {Name: "Nur-Sultan Astana", TzName: "Asia/Almaty"},
	"NRT": {Name: "Tokyo Narita", TzName: "Asia/Tokyo"},
	"NSI": {Name: "Yaounde", TzName: "Africa/Douala"},
	"NSN": {Name: "Nelson", TzName: "Pacific/Auckland"},
	"NTE": {Name: "Nantes", TzName: "Europe/Paris"},
	"NUE": {Name: "Nuremberg", TzName: "Europe/Berlin"},
	"NYU": {Name: "Bagan Nyaung U", TzName: "Asia/Yangon"},
	"OAG": {Name: "Orange", TzName: "Australia/Sydney"},
	"OAK": {Name: "Oakland", TzName: "America/Los_Angeles"},
	"OAX": {Name: "Oaxaca", TzName: "America/Mexico_City"},
	"OKA": {Name: "Okinawa Naha", TzName: "Asia/Tokyo"},
	"OMA": {Name: "Omaha", TzName: "America/Chicago"},
	"ONT": {Name: "Ontario CA", TzName: "America/Los_Angeles"},
	"OOL": {Name: "Gold Coast", TzName: "Australia/Brisbane"},
	"OPO": {Name: "Porto", TzName: "Europe/Lisbon"},
	"ORD": {Name: "Chicago O'Hare", TzName: "America/Chicago"},
	"ORF": {Name: "Norfolk", TzName: "America/New_York"},
	"ORK": {Name: "Cork", TzName: "Europe/Dublin"},
	"ORN": {Name: "Oran", TzName: "Africa/Algiers"},
	"ORY": {Name: "Paris Orly", TzName: "Europe/Paris"},
	"OSL": {Name: "Oslo Gardermoen", TzName: "Europe/Oslo"},
	"OTP": {Name: "Bucharest Henri Coanda", TzName: "Europe/Bucharest"},
	"OUA": {Name: "Ouagadougou", TzName: "Africa/Ouagadougou"},
	"OZZ": {Name: "Ouarzazate", TzName: "Africa/Casablanca"},
	"PAT": {Name: "Patna", TzName: "Asia/Kolkata"},
	"PBD": {Name: "Porbandar", TzName: "Asia/Kolkata"},
	"PBI": {Name: "West Palm Beach", TzName: "America/New_York"},
	"PBM": {Name: "Paramaribo", TzName: "America/Paramaribo"},
	"PDL": {Name: "Ponta Delgada", TzName: "Atlantic/Azores"},
	"PDX": {Name: "Portland", TzName: "America/Los_Angeles"},
	"PEI": {Name: "Pereira", TzName: "America/Bogota"},
	"PEK": {Name: "Beijing Capital", TzName: "Asia/Shanghai"},
	"PEN": {Name: "Penang", TzName: "Asia/Kuala_Lumpur"},
	"PER": {Name: "Perth", TzName: "Australia/Perth"},
	"PEW": {Name: "Peshawar", TzName: "Asia/Karachi"},
	"PFO": {Name: "Paphos", TzName: "Asia/Nicosia"},
	"PGH": {Name: "Pantnagar", TzName: "Asia/Kolkata"},
	"PHC": {Name: "Port Harcourt", TzName: "Africa/Lagos"},
	"PHL": {Name: "Philadelphia", TzName: "America/New_York"},
	"PHX": {Name: "Phoenix Sky Harbor", TzName: "America/Phoenix"},
	"PIT": {Name: "Pittsburgh", TzName: "America/New_York"},
	"PKR": {Name: "Pokhara", TzName: "Asia/Kathmandu"},
	"PKU": {Name: "Pekanbaru", TzName: "Asia/Jakarta"},
	"PKZ": {Name: "Pakse", TzName: "Asia/Vientiane"},
	"PLM": {Name: "Palembang", TzName: "Asia/Jakarta"},
	"PLZ": {Name: "Port Elizabeth", TzName: "Africa/Johannesburg"},
	"PMI": {Name: "Palma de Mallorca", TzName: "Europe/Madrid"},
	"PMO": {Name: "Palermo", TzName: "Europe/Rome"},
	"PMR": {Name: "Palmerston North", TzName: "Pacific/Auckland"},
	"PNH": {Name: "Phnom Penh", TzName: "Asia/Phnom_Penh"},
	"PNI": {Name: "Pohnpei", TzName: "Pacific/Pohnpei"},
	"PNL": {Name: "Pantelleria", TzName: ""},
	"PNQ": {Name: "Pune", TzName: "Asia/Kolkata"},
	"POA": {Name: "Porto Alegre", TzName: "America/Sao_Paulo"},
	"POM": {Name: "Port Moresby", TzName: "Pacific/Port_Moresby"},
	"POS": {Name: "Port of Spain", TzName: "America/Port_of_Spain"},
	"POZ": {Name: "Poznan", TzName: "Europe/Warsaw"},
	"PPP": {Name: "Proserpine Whitsunday", TzName: "Australia/Brisbane"},
	"PPT": {Name: "Papeete Tahiti", TzName: "Pacific/Tahiti"},
	"PQC": {Name: "Phu Quoc", TzName: "Asia/Ho_Chi_Minh"},
	"PRG": {Name: "Prague", TzName: "Europe/Prague"},
	"PSP": {Name: "Palm Springs", TzName: "America/Los_Angeles"},
	"PTY": {Name: "Panama City Tocumen", TzName: "America/Panama"},
	"PUJ": {Name: "Punta Cana", TzName: "America/Santo_Domingo"},
	"PUQ": {Name: "Punta Arenas", TzName: "America/Punta_Arenas"},
	"PUS": {Name: "Busan Gimhae", TzName: "Asia/Seoul"},
	"PVG": {Name: "Shanghai Pudong", TzName: "Asia/Shanghai"},
	"PVR": {Name: "Puerto Vallarta", TzName: "America/Mexico_City"},
	"PWM": {Name: "Portland ME", TzName: "America/New_York"},
	"RAE": {Name: "Arar", TzName: "Asia/Riyadh"},
	"RAJ": {Name: "Rajkot", TzName: "Asia/Kolkata"},
	"RAK": {Name: "Marrakech", TzName: "Africa/Casablanca"},
	"RDU": {Name: "Raleigh-Durham", TzName: "America/New_York"},
	"REC": {Name: "Recife", TzName: "America/Recife"},
	"REP": {Name: "Siem Reap", TzName: "Asia/Phnom_Penh"},
	"RGH": {Name: "Balurghat", TzName: "Asia/Kolkata"},
	"RGN": {Name: "Yangon", TzName: "Asia/Yangon"},
	"RHO": {Name: "Rhodes", TzName: "Europe/Athens"},
	"RIC": {Name: "Richmond", TzName: "America/New_York"},
	"RIX": {Name: "Riga", TzName: "Europe/Riga"},
	"RJA": {Name: "Rajahmundry", TzName: "Asia/Kolkata"},
	"RJH": {Name: "Rajshahi", TzName: "Asia/Dhaka"},
	"RMQ": {Name: "Taichung", TzName: "Asia/Taipei"},
	"RNO": {Name: "Reno-Tahoe", TzName: "America/Los_Angeles"},
	"ROB": {Name: "Monrovia", TzName: "Africa/Monrovia"},
	"ROC": {Name: "Rochester", TzName: "America/New_York"},
	"ROK": {Name: "Rockhampton", TzName: "Australia/Brisbane"},
	"ROR": {Name: "Koror Palau", TzName: "Pacific/Palau"},
	"ROS": {Name: "Rosario", TzName: "America/Argentina/Cordoba"},
	"ROT": {Name: "Rotorua", TzName: "Pacific/Auckland"},
	"RPR": {Name: "Raipur", TzName: "Asia/Kolkata"},
	"RSW": {Name: "Fort Myers", TzName: "America/New_York"},
	"RTB": {Name: "Roatan", TzName: "America/Tegucigalpa"},
	"RUH": {Name: "Riyadh King Khalid", TzName: "Asia/Riyadh"},
	"RUN": {Name: "Reunion", TzName: "Indian/Reunion"},
	"SAL": {Name: "San Salvador", TzName: "America/El_Salvador"},
	"SAN": {Name: "San Diego", TzName: "America/Los_Angeles"},
	"SAP": {Name: "San Pedro Sula", TzName: "America/Tegucigalpa"},
	"SAT": {Name: "San Antonio", TzName: "America/Chicago"},
	"SAV": {Name: "Savannah", TzName: "America/New_York"},
	"SAW": {Name: "Istanbul Sabiha Gokcen", TzName: "Europe/Istanbul"},
	"SCL": {Name: "Santiago", TzName: "America/Santiago"},
	"SCQ": {Name: "Santiago de Compostela", TzName: "Europe/Madrid"},
	"SDA": {Name: "Baghdad Al Muthanna", TzName: ""},
	"SDF": {Name: "Louisville", TzName: "America/New_York"},
	"SDQ": {Name: "Santo Domingo", TzName: "America/Santo_Domingo"},
	"SDU": {Name: "Rio de Janeiro Santos Dumont", TzName: "America/Sao_Paulo"},
	"SEA": {Name: "Seattle-Tacoma", TzName: "America/Los_Angeles"},
	"SEZ": {Name: "Seychelles", TzName: "Indian/Mahe"},
	"SFA": {Name: "Sfax", TzName: "Africa/Tunis"},
	"SFO": {Name: "San Francisco", TzName: "America/Los_Angeles"},
	"SGN": {Name: "Ho Chi Minh City Tan Son Nhat", TzName: "Asia/Ho_Chi_Minh"},
	"SHA": {Name: "Shanghai Hongqiao", TzName: "Asia/Shanghai"},
	"SHE": {Name: "Shenyang Taoxian", TzName: "Asia/Shanghai"},
	"SHJ": {Name: "Sharjah", TzName: "Asia/Dubai"},
	"SHL": {Name: "Shillong", TzName: "Asia/Kolkata"},
	"SIN": {Name: "Singapore Changi", TzName: "Asia/Singapore"},
	"SJC": {Name: "San Jose", TzName: "America/Los_Angeles"},
	"SJD": {Name: "Los Cabos", TzName: "America/Mazatlan"},
	"SJO": {Name: "San Jose Costa Rica", TzName: "America/Costa_Rica"},
	"SJU": {Name: "San Juan PR", TzName: "America/Puerto_Rico"},
	"SKB": {Name: "St Kitts", TzName: "America/St_Kitts"},
	"SKD": {Name: "Samarkand", TzName: "Asia/Samarkand"},
	"SKG": {Name: "Thessaloniki", TzName: "Europe/Athens"},
	"SKT": {Name: "Sialkot", TzName: "Asia/Karachi"},
	"SLC": {Name: "Salt Lake City", TzName: "America/Denver"},
	"SMF": {Name: "Sacramento", TzName: "America/Los_Angeles"},
	"SMR": {Name: "Santa Marta", TzName: "America/Bogota"},
	"SNA": {Name: "Santa Ana", TzName: "America/Los_Angeles"},
	"SNN": {Name: "Shannon", TzName: "Europe/Dublin"},
	"SOC": {Name: "Solo", TzName: "Asia/Jakarta"},
	"SOF": {Name: "Sofia", TzName: "Europe/Sofia"},
	"SPN": {Name: "Saipan", TzName: "Pacific/Saipan"},
	"SPU": {Name: "Split", TzName: "Europe/Belgrade"},
	"SRG": {Name: "Semarang", TzName: "Asia/Jakarta"},
	"SSA": {Name: "Salvador", TzName: "America/Bahia"},
	"SSH": {Name: "Sharm el-Sheikh", TzName: "Africa/Cairo"},
	"STL": {Name: "St Louis", TzName: "America/Chicago"},
	"STN": {Name: "London Stansted", TzName: "Europe/London"},
	"STR": {Name: "Stuttgart", TzName: "Europe/Berlin"},
	"STV": {Name: "Surat", TzName: "Asia/Kolkata"},
	"SUB": {Name: "Surabaya", TzName: "Asia/Jakarta"},
	"SVO": {Name: "Moscow Sheremetyevo", TzName: "Europe/Moscow"},
	"SVQ": {Name: "Seville", TzName: "Europe/Madrid"},
	"SXM": {Name: "St Maarten", TzName: "America/Lower_Princes"},
	"SXR": {Name: "Srinagar", TzName: "Asia/Kolkata"},
	"SYD": {Name: "Sydney Kingsford Smith", TzName: "Australia/Sydney"},
	"SYR": {Name: "Syracuse", TzName: "America/New_York"},
	"SYZ": {Name: "Shiraz", TzName: "Asia/Tehran"},
	"SZB": {Name: "Kuala Lumpur Subang", TzName: "Asia/Kuala_Lumpur"},
	"SZX": {Name: "Shenzhen Bao'an", TzName: "Asia/Shanghai"},
	"TAO": {Name: "Qingdao Liuting", TzName: "Asia/Shanghai"},
	"TAP": {Name: "Tapachula", TzName: "America/Mexico_City"},
	"TAS": {Name: "Tashkent", TzName: "Asia/Tashkent"},
	"TBS": {Name: "Tbilisi", TzName: "Asia/Tbilisi"},
	"TBZ": {Name: "Tabriz", TzName: "Asia/Tehran"},
	"TEZ": {Name: "Tezpur", TzName: "Asia/Kolkata"},
	"TFS": {Name: "Tenerife South", TzName: ""},
	"TGU": {Name: "Tegucigalpa", TzName: "America/Tegucigalpa"},
	"THE": {Name: "Teresina", TzName: "America/Fortaleza"},
	"THR": {Name: "Tehran Mehrabad", TzName: "Asia/Tehran"},
	"TIF": {Name: "Taif", TzName: "Asia/Riyadh"},
	"TIJ": {Name: "Tijuana", TzName: "America/Tijuana"},
	"TIP": {Name: "Tripoli", TzName: "Africa/Tripoli"},
	"TIR": {Name: "Tirupati", TzName: "Asia/Kolkata"},
	"TKK": {Name: "Chuuk", TzName: "Pacific/Chuuk"},
	"TLL": {Name: "Tallinn", TzName: "Europe/Tallinn"},
	"TLM": {Name: "Tlemcen", TzName: "Africa/Algiers"},
	"TLS": {Name: "Toulouse", TzName: "Europe/Paris"},
	"TLV": {Name: "Tel Aviv Ben Gurion", TzName: "Asia/Jerusalem"},
	"TMW": {Name: "Tamworth", TzName: "Australia/Sydney"},
	"TNG": {Name: "Tangier", TzName: "Africa/Casablanca"},
	"TNI": {Name: "Satna", TzName: "Asia/Kolkata"},
	"TNR": {Name: "Antananarivo", TzName: "Indian/Antananarivo"},
	"TPA": {Name: "Tampa", TzName: "America/New_York"},
	"TPE": {Name: "Taipei Taoyuan", TzName: "Asia/Taipei"},
	"TRG": {Name: "Tauranga", TzName: "Pacific/Auckland"},
	"TRV": {Name: "Thiruvananthapuram", TzName: "Asia/Kolkata"},
	"TRW": {Name: "Tarawa", TzName: "Pacific/Tarawa"},
	"TSA": {Name: "Taipei Songshan", TzName: "Asia/Taipei"},
	"TSN": {Name: "Tianjin Binhai", TzName: "Asia/Shanghai"},
	"TSV": {Name: "Townsville", TzName: "Australia/Brisbane"},
	"TUL": {Name: "Tulsa", TzName: "America/Chicago"},
	"TUN": {Name: "Tunis-Carthage", TzName: "Africa/Tunis"},
	"TUS": {Name: "Tucson", TzName: "America/Phoenix"},
	"TUU": {Name: "Tabuk", TzName: "Asia/Riyadh"},
	"TXL": {Name: "Berlin Tegel", TzName: ""},
	"TYS": {Name: "Knoxville", TzName: "America/New_York"},
	"UDR": {Name: "Udaipur", TzName: "Asia/Kolkata"},
	"UET": {Name: "Quetta", TzName: "Asia/Karachi"},
	"UIO": {Name: "Quito", TzName: "America/Guayaquil"},
	"UPG": {Name: "Makassar", TzName: "Asia/Makassar"},
	"URC": {Name: "Urumqi Diwopu", TzName: "Asia/Urumqi"},
	"URT": {Name: "Surat Thani", TzName: "Asia/Bangkok"},
	"URY": {Name: "Gurayat", TzName: "Asia/Riyadh"},
	"USH": {Name: "Ushuaia", TzName: "America/Argentina/Ushuaia"},
	"USM": {Name: "Koh Samui", TzName: "Asia/Bangkok"},
	"UTP": {Name: "U-Tapao Pattaya", TzName: "Asia/Bangkok"},
	"UVF": {Name: "St Lucia Hewanorra", TzName: "America/St_Lucia"},
	"VCA": {Name: "Can Tho", TzName: "Asia/Ho_Chi_Minh"},
	"VCE": {Name: "Venice Marco Polo", TzName: "Europe/Rome"},
	"VCP": {Name: "Campinas Viracopos", TzName: "America/Sao_Paulo"},
	"VDY": {Name: "Vadodara", TzName: "Asia/Kolkata"},
	"VER": {Name: "Veracruz", TzName: "America/Mexico_City"},
	"VFA": {Name: "Victoria Falls", TzName: "Africa/Harare"},
	"VGA": {Name: "Vijayawada", TzName: "Asia/Kolkata"},
	"VIE": {Name: "Vienna", TzName: "Europe/Vienna"},
	"VII": {Name: "Vinh", TzName: "Asia/Ho_Chi_Minh"},
	"VIX": {Name: "Vitoria", TzName: "America/Sao_Paulo"},
	"VLC": {Name: "Valencia", TzName: "Europe/Madrid"},
	"VLI": {Name: "Port Vila", TzName: "Pacific/Efate"},
	"VLN": {Name: "Valencia Venezuela", TzName: "America/Caracas"},
	"VNO": {Name: "Vilnius", TzName: "Europe/Vilnius"},
	"VNS": {Name: "Varanasi", TzName: "Asia/Kolkata"},
	"VTE": {Name: "Vientiane Wattay", TzName: "Asia/Vientiane"},
	"VVI": {Name: "Santa Cruz Bolivia", TzName: "America/La_Paz"},
	"WAW": {Name: "Warsaw Chopin", TzName: "Europe/Warsaw"},
	"WDH": {Name: "Windhoek Hosea Kutako", TzName: "Africa/Windhoek"},
	"WLG": {Name: "Wellington", TzName: "Pacific/Auckland"},
	"WRO": {Name: "Wroclaw", TzName: "Europe/Warsaw"},
	"WUH": {Name: "Wuhan Tianhe", TzName: "Asia/Shanghai"},
	"XIY": {Name: "Xi'an Xianyang", TzName: "Asia/Shanghai"},
	"XMN": {Name: "Xiamen Gaoqi", TzName: "Asia/Shanghai"},
	"YAP": {Name: "Yap", TzName: "Pacific/Chuuk"},
	"YEG": {Name: "Edmonton", TzName: "America/Edmonton"},
	"YFB": {Name: "Iqaluit", TzName: "America/Iqaluit"},
	"YHM": {Name: "Hamilton ON", TzName: "America/Toronto"},
	"YHZ": {Name: "Halifax", TzName: "America/Halifax"},
	"YKA": {Name: "Kamloops", TzName: "America/Vancouver"},
	"YKF": {Name: "Kitchener-Waterloo", TzName: "America/Toronto"},
	"YLW": {Name: "Kelowna", TzName: "America/Vancouver"},
	"YOW": {Name: "Ottawa", TzName: "America/Toronto"},
	"YQB": {Name: "Quebec City", TzName: "America/Toronto"},
	"YQM": {Name: "Moncton", TzName: "America/Moncton"},
	"YQR": {Name: "Regina", TzName: "America/Regina"},
	"YQT": {Name: "Thunder Bay", TzName: "America/Toronto"},
	"YQX": {Name: "Gander", TzName: "America/St_Johns"},
	"YUL": {Name: "Montreal Trudeau", TzName: "America/Toronto"},
	"YVR": {Name: "Vancouver", TzName: "America/Vancouver"},
	"YWG": {Name: "Winnipeg", TzName: "America/Winnipeg"},
	"YXE": {Name: "Saskatoon", TzName: "America/Regina"},
	"YXS": {Name: "Prince George", TzName: "America/Vancouver"},
	"YXU": {Name: "London ON", TzName: "America/Toronto"},
	"YXX": {Name: "Abbotsford", TzName: "America/Vancouver"},
	"YXY": {Name: "Whitehorse", TzName: "America/Whitehorse"},
	"YYC": {Name: "Calgary", TzName: "America/Edmonton"},
	"YYJ": {Name: "Victoria", TzName: "America/Vancouver"},
	"YYT": {Name: "St John's", TzName: "America/St_Johns"},
	"YYZ": {Name: "Toronto Pearson", TzName: "America/Toronto"},
	"YZF": {Name: "Yellowknife", TzName: "America/Yellowknife"},
	"ZAG": {Name: "Zagreb", TzName: "Europe/Zagreb"},
	"ZCO": {Name: "Temuco", TzName: "America/Santiago"},
	"ZIH": {Name: "Ixtapa-Zihuatanejo", TzName: "America/Mexico_City"},
	"ZNZ": {Name: "Zanzibar", TzName: "Africa/Dar_es_Salaam"},
	"ZQN": {Name: "Queenstown", TzName: "Pacific/Auckland"},
	"ZRH": {Name: "Zurich", TzName: "Europe/Zurich"},
	"ZTH": {Name: "Zakynthos", TzName: "Europe/Athens"},
	"ZVK": {Name: "Savannakhet", TzName: ""},
	"ZYL": {Name: "Sylhet Osmani", TzName: "Asia/Dhaka"},
}
