package trlevel

// Entity type names and categories, keyed by type ID.

var tr1EntityTypes = map[int16]entityType{
	0: {"Lara", CategoryLara},
	1: {"LaraPistolsAnim", CategoryAnimation},
	2: {"LaraShotgunAnim", CategoryAnimation},
	3: {"LaraMagnumsAnim", CategoryAnimation},
	4: {"LaraUzisAnim", CategoryAnimation},
	5: {"AlternativeLara", 0},
	6: {"Doppelganger", CategoryEntity},
	7: {"Wolf", CategoryEntity},
	8: {"Bear", CategoryEntity},
	9: {"Bat", CategoryEntity},
	10: {"Crocodile", CategoryEntity},
	11: {"Crocodile", CategoryEntity},
	12: {"Lion (Male)", CategoryEntity},
	13: {"Lion (Female)", CategoryEntity},
	14: {"Panther", CategoryEntity},
	15: {"Gorilla", CategoryEntity},
	16: {"Rat", CategoryEntity},
	17: {"Rat", CategoryEntity},
	18: {"T-Rex", CategoryEntity},
	19: {"Raptor", CategoryEntity},
	20: {"Mutant (Winged)", CategoryEntity},
	21: {"Mutant (Shooter)", CategoryEntity},
	22: {"Mutant", CategoryEntity},
	23: {"Centaur", CategoryEntity},
	24: {"Mummy", CategoryEntity},
	25: {"DinoWarrior", CategoryEntity},
	26: {"Fish", CategoryEntity},
	27: {"Larson", CategoryEntity},
	28: {"Pierre", CategoryEntity},
	29: {"Skateboard", CategoryEntity},
	30: {"Skater Boy", CategoryEntity},
	31: {"Cowboy", CategoryEntity},
	32: {"Kold", CategoryEntity},
	33: {"WingedNatla", CategoryEntity},
	34: {"TorsoBoss", CategoryEntity},
	35: {"Breakable Tile", CategoryTrap},
	36: {"Swinging Blade", CategoryTrap},
	37: {"Spikes", CategoryTrap},
	38: {"Boulder", CategoryTrap},
	39: {"Dart", CategoryTrap},
	40: {"Dart Emitter", CategoryTrap},
	41: {"LiftingDoor", CategoryDoor | CategoryTrapdoor},
	42: {"Slamming Doors", CategoryTrap},
	43: {"Sword", CategoryTrap},
	44: {"Hammer Handle", CategoryTrap},
	45: {"Hammer Block", CategoryTrap},
	46: {"Lightning Ball", CategoryTrap},
	47: {"Barricade", CategoryScenery},
	48: {"Pushable Block 1", CategoryMovable},
	49: {"Pushable Block 2", CategoryMovable},
	50: {"Pushable Block 3", CategoryMovable},
	51: {"Pushable Block 4", CategoryMovable},
	52: {"Moving Block", CategoryMovable},
	53: {"Falling Ceiling", CategoryTrap},
	54: {"Sword 2", CategoryTrap},
	55: {"Wall Switch", CategorySwitch},
	56: {"Underwater Lever", CategorySwitch},
	57: {"Door 1", CategoryDoor},
	58: {"Door 2", CategoryDoor},
	59: {"Door 3", CategoryDoor},
	60: {"Door 4", CategoryDoor},
	61: {"Door 5", CategoryDoor},
	62: {"Door 6", CategoryDoor},
	63: {"Door 7", CategoryDoor},
	64: {"Door 8", CategoryDoor},
	65: {"Trapdoor 1", CategoryDoor | CategoryTrapdoor},
	66: {"Trapdoor 2", CategoryDoor | CategoryTrapdoor},
	68: {"Bridge (Flat)", CategoryScenery},
	69: {"Bridge (Tilt 1)", CategoryScenery},
	70: {"Bridge (Tilt 2)", CategoryScenery},
	71: {"PassportOpening", 0},
	72: {"Compass", 0},
	73: {"LarasHomePolaroid", 0},
	74: {"Animating 1", CategoryScenery},
	75: {"Animating 2", CategoryScenery},
	76: {"Animating 3", CategoryScenery},
	77: {"CutsceneActor1", CategoryEntity},
	78: {"CutsceneActor2", CategoryEntity},
	79: {"CutsceneActor3", CategoryEntity},
	80: {"CutsceneActor4", CategoryEntity},
	81: {"PassportClosed", 0},
	82: {"Map", 0},
	83: {"Savegame Crystal", CategorySpecial},
	84: {"Pistols", CategoryPickup},
	85: {"Shotgun", CategoryPickup},
	86: {"Magnums", CategoryPickup},
	87: {"Uzis", CategoryPickup},
	88: {"Pistol ammo", CategoryPickup},
	89: {"Shotgun ammo", CategoryPickup},
	90: {"Magnum ammo", CategoryPickup},
	91: {"Uzi ammo", CategoryPickup},
	92: {"ExplosiveSprite", 0},
	93: {"Small medipack", CategoryPickup},
	94: {"Large medipack", CategoryPickup},
	95: {"Sunglasses", 0},
	96: {"CassettePlayer", 0},
	97: {"DirectionKeys", 0},
	98: {"Flashlight", 0},
	99: {"Pistols", 0},
	100: {"Shotgun", 0},
	101: {"Magnums", 0},
	102: {"Uzis", 0},
	103: {"PistolAmmo", 0},
	104: {"ShotgunAmmo", 0},
	105: {"MagnumAmmo", 0},
	106: {"UziAmmo", 0},
	107: {"Explosive", 0},
	108: {"Small medipack", 0},
	109: {"Large medipack", 0},
	110: {"Puzzle 1", CategoryPickup | CategoryPuzzle},
	111: {"Puzzle 2", CategoryPickup | CategoryPuzzle},
	112: {"Puzzle 3", CategoryPickup | CategoryPuzzle},
	113: {"Puzzle 4", CategoryPickup | CategoryPuzzle},
	114: {"Puzzle 1", 0},
	115: {"Puzzle 2", 0},
	116: {"Puzzle 3", 0},
	117: {"Puzzle 4", 0},
	118: {"Slot 1", CategorySlot},
	119: {"Slot 2", CategorySlot},
	120: {"Slot 3", CategorySlot},
	121: {"Slot 4", CategorySlot},
	122: {"Slot 1 Done", CategorySlot},
	123: {"Slot 2 Done", CategorySlot},
	124: {"Slot 3 Done", CategorySlot},
	125: {"Slot 4 Done", CategorySlot},
	126: {"Lead Bar", CategoryPickup | CategoryPuzzle},
	127: {"Lead Bar", 0},
	128: {"Midas Hand", CategorySlot},
	129: {"Key 1", CategoryPickup | CategoryKey},
	130: {"Key 2", CategoryPickup | CategoryKey},
	131: {"Key 3", CategoryPickup | CategoryKey},
	132: {"Key 4", CategoryPickup | CategoryKey},
	133: {"Key 1", 0},
	134: {"Key 2", 0},
	135: {"Key 3", 0},
	136: {"Key 4", 0},
	137: {"Keyhole 1", CategoryKeyhole},
	138: {"Keyhole 2", CategoryKeyhole},
	139: {"Keyhole 3", CategoryKeyhole},
	140: {"Keyhole 4", CategoryKeyhole},
	141: {"Quest 1", CategoryPickup},
	142: {"Quest 2", CategoryPickup},
	143: {"Scion Piece", CategoryPickup},
	144: {"Scion Piece", CategoryPickup},
	145: {"Scion", CategoryEntity},
	146: {"Scion", CategoryEntity},
	147: {"Scion Holder", CategoryScenery},
	148: {"Quest 1", 0},
	149: {"Quest 2", 0},
	150: {"ScionPiece2", 0},
	151: {"Explosion", 0},
	153: {"Splash", 0},
	155: {"Bubbles", 0},
	158: {"Blood", 0},
	160: {"Smoke", 0},
	161: {"Centaur", CategoryEntity},
	162: {"Suspended Shack", CategoryScenery},
	163: {"Mutant Egg (Big)", CategoryEntity},
	164: {"Ricochet", 0},
	165: {"Sparkles", 0},
	166: {"Gunflare", 0},
	169: {"Camera Target", CategoryEffect},
	170: {"Waterfall Mist", CategoryEffect | CategoryScenery},
	172: {"MutantBullet", 0},
	173: {"MutantGrenade", 0},
	176: {"LavaParticles", CategoryTrap},
	177: {"Lava Emitter", CategoryTrap | CategoryParticles},
	178: {"Flame", CategoryTrap},
	179: {"Flame Emitter", CategoryTrap | CategoryParticles},
	180: {"Lava Flow", CategoryTrap},
	181: {"MutantEggBig", CategoryEntity},
	182: {"Motorboat", CategoryScenery},
	183: {"Earthquake", CategoryEffect},
	189: {"LaraPonytail", 0},
	190: {"FontGraphics", 0},
	191: {"Plant1", CategoryScenery},
	192: {"Plant2", CategoryScenery},
	193: {"Plant3", CategoryScenery},
	194: {"Plant4", CategoryScenery},
	195: {"Plant5", CategoryScenery},
	200: {"Bag1", CategoryScenery},
	204: {"Bag2", CategoryScenery},
	212: {"Rock1", CategoryScenery},
	213: {"Rock2", CategoryScenery},
	214: {"Rock3", CategoryScenery},
	215: {"Bag3", CategoryScenery},
	216: {"Pottery1", CategoryScenery},
	217: {"Pottery2", CategoryScenery},
	231: {"PaintedPot", CategoryScenery},
	233: {"IncaMummy", CategoryScenery},
	236: {"Pottery3", CategoryScenery},
	237: {"Pottery4", CategoryScenery},
	238: {"Pottery5", CategoryScenery},
	239: {"Pottery6", CategoryScenery},
}

var tr2EntityTypes = map[int16]entityType{
	0: {"Lara", CategoryLara},
	1: {"LaraPistolsAnim", 0},
	2: {"LaraPonytail", 0},
	3: {"LaraShotgunAnim", 0},
	4: {"LaraAutopistolsAnim", 0},
	5: {"LaraUzisAnim", 0},
	6: {"LaraM16Anim", 0},
	7: {"LaraGrenadeLauncherAnim", 0},
	8: {"LaraHarpoonGunAnim", 0},
	9: {"LaraFlareAnim", 0},
	10: {"LaraSnowmobileAnim", 0},
	11: {"LaraBoatAnim", 0},
	12: {"AlternativeLara", 0},
	13: {"Skidoo", CategoryVehicle},
	14: {"Boat", CategoryVehicle},
	15: {"Dog", CategoryEntity},
	16: {"Masked Goon 1", CategoryEntity},
	17: {"Masked Goon 2", CategoryEntity},
	18: {"Masked Goon 3", CategoryEntity},
	19: {"Knife thrower", CategoryEntity},
	20: {"Shotgun Goon", CategoryEntity},
	21: {"Rat", CategoryEntity},
	22: {"DragonFront", CategoryEntity},
	23: {"DragonBack", CategoryEntity},
	24: {"Gondola", CategoryScenery},
	25: {"Shark", CategoryEntity},
	26: {"Yellow Eel", CategoryEntity},
	27: {"Black Eel", CategoryEntity},
	28: {"Barracuda", CategoryEntity},
	29: {"Scuba Diver", CategoryEntity},
	30: {"Shotgun Goon", CategoryEntity},
	31: {"Rifle Goon", CategoryEntity},
	32: {"Stick Goon 1", CategoryEntity},
	33: {"Stick Goon 2", CategoryEntity},
	34: {"Flamethrower", CategoryEntity},
	36: {"Spider", CategoryEntity},
	37: {"Giant Spider", CategoryEntity},
	38: {"Crow", CategoryEntity},
	39: {"Tiger/Leopard", CategoryEntity},
	40: {"Bartoli", CategoryEntity},
	41: {"Guard (Spear)", CategoryEntity},
	42: {"XianGuardSpearStatue", CategoryEntity},
	43: {"Guard (Sword)", CategoryEntity},
	44: {"XianGuardSwordStatue", CategoryEntity},
	45: {"Yeti", CategoryEntity},
	46: {"Guardian", CategoryEntity},
	47: {"Eagle", CategoryEntity},
	48: {"Mercenary 1", CategoryEntity},
	49: {"Mercenary 2", CategoryEntity},
	50: {"Mercenary 3", CategoryEntity},
	51: {"Black Skidoo", CategoryEntity},
	52: {"Skidoo Driver", CategoryEntity},
	53: {"Monk 1", CategoryEntity},
	54: {"Monk 2", CategoryEntity},
	55: {"Breakable Tile", CategoryTrap},
	57: {"Loose Boards", CategoryTrap},
	58: {"Swinging Sandbag", CategoryTrap},
	59: {"Spikes", CategoryTrap},
	60: {"Boulder", CategoryTrap},
	61: {"Dart", CategoryTrap},
	62: {"Dart Emitter", CategoryTrap},
	63: {"Drawbridge", CategoryTrapdoor | CategoryDoor},
	64: {"Slamming Doors", CategoryTrap},
	65: {"Elevator", CategoryMovable},
	66: {"Minisub", CategoryScenery},
	67: {"Pushable Block 1", CategoryMovable},
	68: {"Pushable Block 2", CategoryMovable},
	69: {"Pushable Block 3", CategoryMovable},
	70: {"Pushable Block 4", CategoryMovable},
	71: {"Lava bowl", CategoryScenery},
	72: {"Breakable Window", CategoryScenery},
	73: {"Breakable Window", CategoryScenery},
	76: {"Propeller", CategoryTrap},
	77: {"PowerSaw", CategoryTrap},
	78: {"Hook", CategoryTrap},
	79: {"Falling Ceiling", CategoryTrap},
	80: {"Rolling Spindle", CategoryTrap},
	81: {"Wall Blade", CategoryTrap},
	82: {"Statue Blade", CategoryTrap},
	83: {"Boulders", CategoryTrap},
	84: {"Icicles", CategoryTrap},
	85: {"Spike Wall", CategoryTrap},
	86: {"Springboard", CategoryTrap},
	87: {"Spike Ceiling", CategoryTrap},
	88: {"Bell", CategoryScenery},
	89: {"BoatWake", 0},
	90: {"SnowmobileWake", 0},
	91: {"SnowmobileBelt", 0},
	92: {"Wheel Door", CategoryDoor},
	93: {"Small Switch", CategorySwitch},
	94: {"Underwater Fan", CategoryTrap},
	95: {"Fan", CategoryTrap},
	96: {"Swinging Box", CategoryTrap},
	97: {"CutsceneActor1", CategoryEntity},
	98: {"CutsceneActor2", CategoryEntity},
	99: {"CutsceneActor3", CategoryEntity},
	100: {"UIFrame", 0},
	101: {"Rolling Barrels", CategoryTrap},
	102: {"Zipline", CategoryVehicle},
	103: {"Button", CategorySwitch},
	104: {"Wall Switch", CategorySwitch},
	105: {"Underwater Lever", CategorySwitch},
	106: {"Door 1", CategoryDoor},
	107: {"Door 2", CategoryDoor},
	108: {"Door 3", CategoryDoor},
	109: {"Door 4", CategoryDoor},
	110: {"Door 5", CategoryDoor},
	111: {"Door 6", CategoryDoor},
	112: {"Door 7", CategoryDoor},
	113: {"Door 8", CategoryDoor},
	114: {"Trapdoor 1", CategoryDoor | CategoryTrapdoor},
	115: {"Trapdoor 2", CategoryDoor | CategoryTrapdoor},
	116: {"Trapdoor 3", CategoryDoor | CategoryTrapdoor},
	117: {"Bridge (Flat)", CategoryScenery},
	118: {"Bridge (Tilt 1)", CategoryScenery},
	119: {"Bridge (Tilt 2)", CategoryScenery},
	120: {"PassportOpening", 0},
	121: {"Compass", 0},
	122: {"LarasHomePolaroid", 0},
	123: {"CutsceneActor4", CategoryEntity},
	124: {"CutsceneActor5", CategoryEntity},
	125: {"CutsceneActor6", CategoryEntity},
	126: {"CutsceneActor7", CategoryEntity},
	127: {"CutsceneActor8", CategoryEntity},
	128: {"CutsceneActor9", CategoryEntity},
	129: {"CutsceneActor10", CategoryEntity},
	130: {"CutsceneActor11", CategoryEntity},
	133: {"PassportClosed", CategoryEntity},
	134: {"Map", 0},
	135: {"Pistols", CategoryPickup},
	136: {"Shotgun", CategoryPickup},
	137: {"Auto pistols", CategoryPickup},
	138: {"Uzis", CategoryPickup},
	139: {"Harpoon Gun", CategoryPickup},
	140: {"M16", CategoryPickup},
	141: {"Grenade launcher", CategoryPickup},
	142: {"PistolAmmoSprite", CategoryPickup},
	143: {"Shotgun shells", CategoryPickup},
	144: {"Auto pistol ammo", CategoryPickup},
	145: {"Uzi ammo", CategoryPickup},
	146: {"Harpoons", CategoryPickup},
	147: {"M16 ammo", CategoryPickup},
	148: {"Grenades", CategoryPickup},
	149: {"Small medipack", CategoryPickup},
	150: {"Large medipack", CategoryPickup},
	151: {"Flares", CategoryPickup},
	152: {"Flare", CategoryPickup},
	153: {"Sunglasses", 0},
	154: {"CassettePlayer", 0},
	155: {"DirectionKeys", 0},
	157: {"Pistols", 0},
	158: {"Shotgun", 0},
	159: {"Autopistols", 0},
	160: {"Uzis", 0},
	161: {"HarpoonGun", 0},
	162: {"M16", 0},
	163: {"GrenadeLauncher", 0},
	164: {"PistolAmmo", 0},
	165: {"ShotgunAmmo", 0},
	166: {"AutopistolAmmo", 0},
	167: {"UziAmmo", 0},
	168: {"HarpoonGunAmmo", 0},
	169: {"M16Ammo", 0},
	170: {"GrenadeLauncherAmmo", 0},
	171: {"SmallMedipack", 0},
	172: {"LargeMedipack", 0},
	173: {"Flares", CategoryPickup},
	174: {"Puzzle 1", CategoryPickup | CategoryPuzzle},
	175: {"Puzzle 2", CategoryPickup | CategoryPuzzle},
	176: {"Puzzle 3", CategoryPickup | CategoryPuzzle},
	177: {"Puzzle 4", CategoryPickup | CategoryPuzzle},
	178: {"Puzzle 1", 0},
	179: {"Puzzle 2", 0},
	180: {"Puzzle 3", 0},
	181: {"Puzzle 4", 0},
	182: {"Slot 1", CategorySlot},
	183: {"Slot 2", CategorySlot},
	184: {"Slot 3", CategorySlot},
	185: {"Slot 4", CategorySlot},
	186: {"Slot 1 Done", CategorySlot},
	187: {"Slot 2 Done", CategorySlot},
	188: {"Slot 3 Done", CategorySlot},
	189: {"Slot 4 Done", CategorySlot},
	190: {"Secret (Gold)", CategoryPickup},
	191: {"Secret (Jade)", CategoryPickup},
	192: {"Secret (Stone)", CategoryPickup},
	193: {"Key 1", CategoryPickup | CategoryKey},
	194: {"Key 2", CategoryPickup | CategoryKey},
	195: {"Key 3", CategoryPickup | CategoryKey},
	196: {"Key 4", CategoryPickup | CategoryKey},
	197: {"Key 1", 0},
	198: {"Key 2", 0},
	199: {"Key 3", 0},
	200: {"Key 4", 0},
	201: {"Keyhole 1", CategoryKeyhole},
	202: {"Keyhole 2", CategoryKeyhole},
	203: {"Keyhole 3", CategoryKeyhole},
	204: {"Keyhole 4", CategoryKeyhole},
	205: {"Quest Item 1", CategoryPickup},
	206: {"The Talion", CategoryPickup},
	207: {"QuestItem1", CategoryPickup},
	208: {"QuestItem2", CategoryPickup},
	209: {"DragonExplosionEffect", 0},
	210: {"DragonExplosionEffect2", 0},
	211: {"DragonExplosionEffect3", 0},
	212: {"Alarm", CategoryEffect},
	213: {"Dripping Water", CategoryEffect},
	214: {"T-Rex", CategoryEntity},
	215: {"Singing Birds", CategoryEffect},
	216: {"BartoliHideoutClock", CategoryEffect},
	217: {"Placeholder", 0},
	218: {"DragonBonesFront", 0},
	219: {"DragonBonesBack", 0},
	220: {"ExtraFire", 0},
	222: {"Mine", CategoryTrap},
	223: {"MenuBackground", 0},
	224: {"GrayDisk", CategoryTrap},
	225: {"GongStick", CategoryPickup | CategoryPuzzle},
	226: {"Gong", CategorySlot},
	227: {"Detonator", CategoryPickup | CategoryPuzzle},
	228: {"Helicopter", CategoryScenery},
	229: {"Explosion", 0},
	230: {"Splash", 0},
	231: {"Bubbles", 0},
	233: {"Blood", 0},
	235: {"FlareSparkles", 0},
	236: {"Glow", 0},
	238: {"Ricochet", 0},
	240: {"Gunflare", 0},
	241: {"M16Gunflare", 0},
	243: {"Camera Target", CategoryEffect},
	244: {"Waterfall Mist", CategoryEffect},
	245: {"Harpoon", 0},
	247: {"Placeholder", 0},
	248: {"GrenadeSingle", 0},
	249: {"HarpoonFlying", 0},
	250: {"LavaParticles", 0},
	251: {"Lava Emitter", CategoryTrap | CategoryParticles},
	252: {"Flame", 0},
	253: {"Flame Emitter", CategoryFire | CategoryParticles},
	254: {"Skybox", 0},
	255: {"FontGraphics", 0},
	256: {"Monk", CategoryEntity},
	257: {"Doorbell", CategoryEffect},
	258: {"AlarmBell", CategoryEffect},
	259: {"Helicopter", CategoryEntity},
	260: {"Winston", CategoryEntity},
	262: {"LaraCutscenePlacement", CategoryScenery},
	263: {"ShotgunAnimation", CategoryScenery},
	264: {"Dragon (Emitter)", CategoryEntity},
}
