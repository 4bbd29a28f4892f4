package gazetteer

// Static municipality dataset, loaded once and never mutated, so concurrent
// reads need no locking. Not exhaustive: curated to the most populous
// municipalities per province, plus coastal localities that show up in
// vacation-rental addresses (Torre del Mar carries its parent municipality's
// INE code). Kept in province order.
var municipalities = []Municipality{
	{Code: "01059", Name: "Vitoria-Gasteiz", Province: "Álava"},
	{Code: "02003", Name: "Albacete", Province: "Albacete"},
	{Code: "03014", Name: "Alicante", Province: "Alicante"},
	{Code: "03065", Name: "Elche", Province: "Alicante"},
	{Code: "03031", Name: "Benidorm", Province: "Alicante"},
	{Code: "03099", Name: "Orihuela", Province: "Alicante"},
	{Code: "03133", Name: "Torrevieja", Province: "Alicante"},
	{Code: "04013", Name: "Almería", Province: "Almería"},
	{Code: "04079", Name: "Roquetas de Mar", Province: "Almería"},
	{Code: "04902", Name: "El Ejido", Province: "Almería"},
	{Code: "05019", Name: "Ávila", Province: "Ávila"},
	{Code: "06015", Name: "Badajoz", Province: "Badajoz"},
	{Code: "06083", Name: "Mérida", Province: "Badajoz"},
	{Code: "07040", Name: "Palma", Province: "Baleares"},
	{Code: "07026", Name: "Eivissa", Province: "Baleares"},
	{Code: "07033", Name: "Manacor", Province: "Baleares"},
	{Code: "08019", Name: "Barcelona", Province: "Barcelona"},
	{Code: "08101", Name: "L'Hospitalet de Llobregat", Province: "Barcelona"},
	{Code: "08015", Name: "Badalona", Province: "Barcelona"},
	{Code: "08279", Name: "Terrassa", Province: "Barcelona"},
	{Code: "08187", Name: "Sabadell", Province: "Barcelona"},
	{Code: "08121", Name: "Mataró", Province: "Barcelona"},
	{Code: "09059", Name: "Burgos", Province: "Burgos"},
	{Code: "10037", Name: "Cáceres", Province: "Cáceres"},
	{Code: "10148", Name: "Plasencia", Province: "Cáceres"},
	{Code: "11012", Name: "Cádiz", Province: "Cádiz"},
	{Code: "11020", Name: "Jerez de la Frontera", Province: "Cádiz"},
	{Code: "11004", Name: "Algeciras", Province: "Cádiz"},
	{Code: "12040", Name: "Castellón de la Plana", Province: "Castellón"},
	{Code: "13034", Name: "Ciudad Real", Province: "Ciudad Real"},
	{Code: "14021", Name: "Córdoba", Province: "Córdoba"},
	{Code: "15030", Name: "A Coruña", Province: "A Coruña"},
	{Code: "15078", Name: "Santiago de Compostela", Province: "A Coruña"},
	{Code: "15036", Name: "Ferrol", Province: "A Coruña"},
	{Code: "16078", Name: "Cuenca", Province: "Cuenca"},
	{Code: "17079", Name: "Girona", Province: "Girona"},
	{Code: "17066", Name: "Figueres", Province: "Girona"},
	{Code: "18087", Name: "Granada", Province: "Granada"},
	{Code: "18140", Name: "Motril", Province: "Granada"},
	{Code: "19130", Name: "Guadalajara", Province: "Guadalajara"},
	{Code: "20069", Name: "Donostia-San Sebastián", Province: "Gipuzkoa"},
	{Code: "20045", Name: "Irun", Province: "Gipuzkoa"},
	{Code: "21041", Name: "Huelva", Province: "Huelva"},
	{Code: "22125", Name: "Huesca", Province: "Huesca"},
	{Code: "23050", Name: "Jaén", Province: "Jaén"},
	{Code: "23055", Name: "Linares", Province: "Jaén"},
	{Code: "24089", Name: "León", Province: "León"},
	{Code: "24115", Name: "Ponferrada", Province: "León"},
	{Code: "25120", Name: "Lleida", Province: "Lleida"},
	{Code: "26089", Name: "Logroño", Province: "La Rioja"},
	{Code: "27028", Name: "Lugo", Province: "Lugo"},
	{Code: "28079", Name: "Madrid", Province: "Madrid"},
	{Code: "28092", Name: "Móstoles", Province: "Madrid"},
	{Code: "28005", Name: "Alcalá de Henares", Province: "Madrid"},
	{Code: "28058", Name: "Fuenlabrada", Province: "Madrid"},
	{Code: "28074", Name: "Leganés", Province: "Madrid"},
	{Code: "28065", Name: "Getafe", Province: "Madrid"},
	{Code: "28007", Name: "Alcorcón", Province: "Madrid"},
	{Code: "28006", Name: "Alcobendas", Province: "Madrid"},
	{Code: "28148", Name: "Torrejón de Ardoz", Province: "Madrid"},
	{Code: "28152", Name: "Torrelodones", Province: "Madrid"},
	{Code: "29067", Name: "Málaga", Province: "Málaga"},
	{Code: "29069", Name: "Marbella", Province: "Málaga"},
	{Code: "29070", Name: "Mijas", Province: "Málaga"},
	{Code: "29094", Name: "Vélez-Málaga", Province: "Málaga"},
	{Code: "29094", Name: "Torre del Mar", Province: "Málaga"},
	{Code: "29054", Name: "Fuengirola", Province: "Málaga"},
	{Code: "29901", Name: "Torremolinos", Province: "Málaga"},
	{Code: "29025", Name: "Benalmádena", Province: "Málaga"},
	{Code: "29051", Name: "Estepona", Province: "Málaga"},
	{Code: "29084", Name: "Ronda", Province: "Málaga"},
	{Code: "29015", Name: "Antequera", Province: "Málaga"},
	{Code: "29091", Name: "Torrox", Province: "Málaga"},
	{Code: "29075", Name: "Nerja", Province: "Málaga"},
	{Code: "29007", Name: "Alhaurín de la Torre", Province: "Málaga"},
	{Code: "30030", Name: "Murcia", Province: "Murcia"},
	{Code: "30016", Name: "Cartagena", Province: "Murcia"},
	{Code: "30024", Name: "Lorca", Province: "Murcia"},
	{Code: "30027", Name: "Molina de Segura", Province: "Murcia"},
	{Code: "30038", Name: "Las Torres de Cotillas", Province: "Murcia"},
	{Code: "31201", Name: "Pamplona", Province: "Navarra"},
	{Code: "31232", Name: "Tudela", Province: "Navarra"},
	{Code: "32054", Name: "Ourense", Province: "Ourense"},
	{Code: "33044", Name: "Oviedo", Province: "Asturias"},
	{Code: "33024", Name: "Gijón", Province: "Asturias"},
	{Code: "33004", Name: "Avilés", Province: "Asturias"},
	{Code: "34120", Name: "Palencia", Province: "Palencia"},
	{Code: "35016", Name: "Las Palmas de Gran Canaria", Province: "Las Palmas"},
	{Code: "35026", Name: "Telde", Province: "Las Palmas"},
	{Code: "36057", Name: "Vigo", Province: "Pontevedra"},
	{Code: "36038", Name: "Pontevedra", Province: "Pontevedra"},
	{Code: "37274", Name: "Salamanca", Province: "Salamanca"},
	{Code: "38038", Name: "Santa Cruz de Tenerife", Province: "Santa Cruz de Tenerife"},
	{Code: "38023", Name: "San Cristóbal de La Laguna", Province: "Santa Cruz de Tenerife"},
	{Code: "39075", Name: "Santander", Province: "Cantabria"},
	{Code: "39087", Name: "Torrelavega", Province: "Cantabria"},
	{Code: "40194", Name: "Segovia", Province: "Segovia"},
	{Code: "41091", Name: "Sevilla", Province: "Sevilla"},
	{Code: "41038", Name: "Dos Hermanas", Province: "Sevilla"},
	{Code: "41004", Name: "Alcalá de Guadaíra", Province: "Sevilla"},
	{Code: "42173", Name: "Soria", Province: "Soria"},
	{Code: "43148", Name: "Tarragona", Province: "Tarragona"},
	{Code: "43123", Name: "Reus", Province: "Tarragona"},
	{Code: "43153", Name: "Torredembarra", Province: "Tarragona"},
	{Code: "44216", Name: "Teruel", Province: "Teruel"},
	{Code: "45168", Name: "Toledo", Province: "Toledo"},
	{Code: "45165", Name: "Talavera de la Reina", Province: "Toledo"},
	{Code: "46250", Name: "Valencia", Province: "Valencia"},
	{Code: "46244", Name: "Torrent", Province: "Valencia"},
	{Code: "46131", Name: "Gandia", Province: "Valencia"},
	{Code: "46192", Name: "Paterna", Province: "Valencia"},
	{Code: "47186", Name: "Valladolid", Province: "Valladolid"},
	{Code: "48020", Name: "Bilbao", Province: "Bizkaia"},
	{Code: "48013", Name: "Barakaldo", Province: "Bizkaia"},
	{Code: "48044", Name: "Getxo", Province: "Bizkaia"},
	{Code: "49275", Name: "Zamora", Province: "Zamora"},
	{Code: "49219", Name: "Toro", Province: "Zamora"},
	{Code: "50297", Name: "Zaragoza", Province: "Zaragoza"},
	{Code: "51001", Name: "Ceuta", Province: "Ceuta"},
	{Code: "52001", Name: "Melilla", Province: "Melilla"},
}
