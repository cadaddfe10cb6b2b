package melee

// stateNames lists the shared catalogue in declaration order. Kept complete
// so diagnostics for dropped spans can name the state they stalled on.
var stateNames = [MaxKnownState + 1]string{
	// 0..13: death and respawn
	"DeadDown", "DeadLeft", "DeadRight", "DeadUp", "DeadUpStar", "DeadUpStarIce",
	"DeadUpFall", "DeadUpFallHitCamera", "DeadUpFallHitCameraFlat", "DeadUpFallIce",
	"DeadUpFallHitCameraIce", "Sleep", "Rebirth", "RebirthWait",
	// 14..24: grounded movement
	"Wait", "WalkSlow", "WalkMiddle", "WalkFast", "Turn", "TurnRun", "Dash", "Run",
	"RunDirect", "RunBrake", "KneeBend",
	// 25..43: jumps, falls, landings
	"JumpF", "JumpB", "JumpAerialF", "JumpAerialB", "Fall", "FallF", "FallB",
	"FallAerial", "FallAerialF", "FallAerialB", "FallSpecial", "FallSpecialF",
	"FallSpecialB", "DamageFall", "Squat", "SquatWait", "SquatRv", "Landing",
	"LandingFallSpecial",
	// 44..74: attacks and their landings
	"Attack11", "Attack12", "Attack13", "Attack100Start", "Attack100Loop",
	"Attack100End", "AttackDash", "AttackS3Hi", "AttackS3HiS", "AttackS3S",
	"AttackS3LwS", "AttackS3Lw", "AttackHi3", "AttackLw3", "AttackS4Hi",
	"AttackS4HiS", "AttackS4S", "AttackS4LwS", "AttackS4Lw", "AttackHi4",
	"AttackLw4", "AttackAirN", "AttackAirF", "AttackAirB", "AttackAirHi",
	"AttackAirLw", "LandingAirN", "LandingAirF", "LandingAirB", "LandingAirHi",
	"LandingAirLw",
	// 75..91: damage
	"DamageHi1", "DamageHi2", "DamageHi3", "DamageN1", "DamageN2", "DamageN3",
	"DamageLw1", "DamageLw2", "DamageLw3", "DamageAir1", "DamageAir2", "DamageAir3",
	"DamageFlyHi", "DamageFlyN", "DamageFlyLw", "DamageFlyTop", "DamageFlyRoll",
	// 92..119: item pickup and throws
	"LightGet", "HeavyGet", "LightThrowF", "LightThrowB", "LightThrowHi",
	"LightThrowLw", "LightThrowDash", "LightThrowDrop", "LightThrowAirF",
	"LightThrowAirB", "LightThrowAirHi", "LightThrowAirLw", "HeavyThrowF",
	"HeavyThrowB", "HeavyThrowHi", "HeavyThrowLw", "LightThrowF4", "LightThrowB4",
	"LightThrowHi4", "LightThrowLw4", "LightThrowAirF4", "LightThrowAirB4",
	"LightThrowAirHi4", "LightThrowAirLw4", "HeavyThrowF4", "HeavyThrowB4",
	"HeavyThrowHi4", "HeavyThrowLw4",
	// 120..143: item swings
	"SwordSwing1", "SwordSwing3", "SwordSwing4", "SwordSwingDash", "BatSwing1",
	"BatSwing3", "BatSwing4", "BatSwingDash", "ParasolSwing1", "ParasolSwing3",
	"ParasolSwing4", "ParasolSwingDash", "HarisenSwing1", "HarisenSwing3",
	"HarisenSwing4", "HarisenSwingDash", "StarRodSwing1", "StarRodSwing3",
	"StarRodSwing4", "StarRodSwingDash", "LipStickSwing1", "LipStickSwing3",
	"LipStickSwing4", "LipStickSwingDash",
	// 144..177: held item states
	"ItemParasolOpen", "ItemParasolFall", "ItemParasolFallSpecial",
	"ItemParasolDamageFall", "LGunShoot", "LGunShootAir", "LGunShootEmpty",
	"LGunShootAirEmpty", "FireFlowerShoot", "FireFlowerShootAir", "ItemScrew",
	"ItemScrewAir", "DamageScrew", "DamageScrewAir", "ItemScopeStart",
	"ItemScopeRapid", "ItemScopeFire", "ItemScopeEnd", "ItemScopeAirStart",
	"ItemScopeAirRapid", "ItemScopeAirFire", "ItemScopeAirEnd",
	"ItemScopeStartEmpty", "ItemScopeRapidEmpty", "ItemScopeFireEmpty",
	"ItemScopeEndEmpty", "ItemScopeAirStartEmpty", "ItemScopeAirRapidEmpty",
	"ItemScopeAirFireEmpty", "ItemScopeAirEndEmpty", "LiftWait", "LiftWalk1",
	"LiftWalk2", "LiftTurn",
	// 178..182: shield
	"GuardOn", "Guard", "GuardOff", "GuardSetOff", "GuardReflect",
	// 183..211: downed, tech, shield break
	"DownBoundU", "DownWaitU", "DownDamageU", "DownStandU", "DownAttackU",
	"DownFowardU", "DownBackU", "DownSpotU", "DownBoundD", "DownWaitD",
	"DownDamageD", "DownStandD", "DownAttackD", "DownFowardD", "DownBackD",
	"DownSpotD", "Passive", "PassiveStandF", "PassiveStandB", "PassiveWall",
	"PassiveWallJump", "PassiveCeil", "ShieldBreakFly", "ShieldBreakFall",
	"ShieldBreakDownU", "ShieldBreakDownD", "ShieldBreakStandU",
	"ShieldBreakStandD", "FuraFura",
	// 212..232: grabs and captures
	"Catch", "CatchPull", "CatchDash", "CatchDashPull", "CatchWait", "CatchAttack",
	"CatchCut", "ThrowF", "ThrowB", "ThrowHi", "ThrowLw", "CapturePulledHi",
	"CaptureWaitHi", "CaptureDamageHi", "CapturePulledLw", "CaptureWaitLw",
	"CaptureDamageLw", "CaptureCut", "CaptureJump", "CaptureNeck", "CaptureFoot",
	// 233..251: dodges, thrown, walls
	"EscapeF", "EscapeB", "Escape", "EscapeAir", "ReboundStop", "Rebound",
	"ThrownF", "ThrownB", "ThrownHi", "ThrownLw", "ThrownLwWomen", "Pass",
	"Ottotto", "OttottoWait", "FlyReflectWall", "FlyReflectCeil", "StopWall",
	"StopCeil", "MissFoot",
	// 252..263: ledge
	"CliffCatch", "CliffWait", "CliffClimbSlow", "CliffClimbQuick",
	"CliffAttackSlow", "CliffAttackQuick", "CliffEscapeSlow", "CliffEscapeQuick",
	"CliffJumpSlow1", "CliffJumpSlow2", "CliffJumpQuick1", "CliffJumpQuick2",
	// 264..274: taunts and shouldered
	"AppealR", "AppealL", "ShoulderedWait", "ShoulderedWalkSlow",
	"ShoulderedWalkMiddle", "ShoulderedWalkFast", "ShoulderedTurn", "ThrownFF",
	"ThrownFB", "ThrownFHi", "ThrownFLw",
	// 275..340: character-specific captures and misc
	"CaptureCaptain", "CaptureYoshi", "YoshiEgg", "CaptureKoopa",
	"CaptureDamageKoopa", "CaptureWaitKoopa", "ThrownKoopaF", "ThrownKoopaB",
	"CaptureKoopaAir", "CaptureDamageKoopaAir", "CaptureWaitKoopaAir",
	"ThrownKoopaAirF", "ThrownKoopaAirB", "CaptureKirby", "CaptureWaitKirby",
	"ThrownKirbyStar", "ThrownCopyStar", "ThrownKirby", "BarrelWait", "Bury",
	"BuryWait", "BuryJump", "DamageSong", "DamageSongWait", "DamageSongRv",
	"DamageBind", "CaptureMewtwo", "CaptureMewtwoAir", "ThrownMewtwo",
	"ThrownMewtwoAir", "WarpStarJump", "WarpStarFall", "HammerWait", "HammerWalk",
	"HammerTurn", "HammerKneeBend", "HammerFall", "HammerJump", "HammerLanding",
	"KinokoGiantStart", "KinokoGiantStartAir", "KinokoGiantEnd",
	"KinokoGiantEndAir", "KinokoSmallStart", "KinokoSmallStartAir",
	"KinokoSmallEnd", "KinokoSmallEndAir", "Entry", "EntryStart", "EntryEnd",
	"DamageIce", "DamageIceJump", "CaptureMasterHand", "CaptureDamageMasterHand",
	"CaptureWaitMasterHand", "ThrownMasterHand", "CaptureKirbyYoshi",
	"KirbyYoshiEgg", "CaptureRedead", "CaptureLikeLike", "DownReflect",
	"CaptureCrazyHand", "CaptureDamageCrazyHand", "CaptureWaitCrazyHand",
	"ThrownCrazyHand", "BarrelCannonWait",
}
