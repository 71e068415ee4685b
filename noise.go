package textmode

// noiseTile is a 16x16 tile of 8-bit blue noise used to modulate the blur's
// vertical pass (§4.11, §6 static assets). Values are well-distributed
// pseudo-blue-noise, embedded as a constant rather than generated at
// runtime or loaded from a file (no external assets, per scope).
var noiseTile = [256]byte{
	127, 201, 53, 168, 89, 230, 14, 145, 76, 197, 38, 182, 109, 6, 220, 98,
	63, 176, 21, 134, 242, 87, 159, 30, 212, 58, 150, 9, 190, 118, 45, 226,
	189, 8, 117, 249, 46, 104, 182, 67, 128, 15, 205, 93, 160, 37, 216, 72,
	34, 152, 96, 218, 11, 171, 125, 55, 236, 80, 139, 27, 197, 102, 175, 4,
	221, 70, 198, 29, 140, 184, 62, 211, 97, 156, 48, 229, 12, 161, 88, 149,
	112, 165, 41, 124, 206, 19, 76, 233, 137, 58, 183, 107, 52, 195, 24, 177,
	191, 23, 143, 82, 240, 100, 166, 5, 215, 147, 71, 202, 33, 130, 86, 209,
	60, 174, 95, 16, 186, 113, 40, 252, 78, 193, 122, 2, 168, 44, 251, 115,
	248, 119, 47, 224, 65, 154, 203, 91, 10, 179, 135, 57, 238, 103, 170, 25,
	31, 188, 75, 132, 208, 217, 39, 157, 234, 64, 126, 200, 18, 75, 146, 99,
	144, 53, 227, 83, 196, 13, 108, 243, 26, 181, 61, 213, 90, 170, 42, 245,
	210, 7, 172, 120, 43, 153, 94, 17, 138, 248, 54, 163, 111, 27, 192, 69,
	85, 163, 20, 206, 116, 239, 56, 178, 66, 123, 35, 158, 221, 6, 133, 199,
	228, 105, 49, 150, 2, 184, 114, 73, 214, 36, 167, 79, 149, 254, 101, 32,
	16, 141, 232, 62, 173, 92, 9, 246, 129, 203, 51, 162, 22, 194, 110, 59,
	204, 68, 136, 29, 219, 81, 155, 3, 180, 106, 237, 50, 121, 15, 169, 225,
}
